// Package winapi contains the raw user32, kernel32 and psapi bindings used by
// lazywinapi. Every procedure is resolved lazily from its system DLL on first
// use. It can be thought of as an extension to golang.org/x/sys/windows.
package winapi
