// Package clipsys is the seam between the clipboard package and the user32
// clipboard and kernel32 global-memory calls it is built on.
//
// Handles are passed as uintptr so that the seam, and everything above it,
// builds on every platform. Only Windows has a working [Native].
package clipsys

import "errors"

//go:generate go tool go.uber.org/mock/mockgen -source clipsys.go -package mock -destination mock/clipsys_mock.go

// ErrUnsupported is returned by every call of [Native] on platforms without a
// Win32 clipboard.
var ErrUnsupported = errors.New("clipboard is only supported on Windows")

// API is the set of system calls backing a clipboard session.
type API interface {
	OpenClipboard() error
	CloseClipboard() error
	EmptyClipboard() error
	GetClipboardData(format uint32) (uintptr, error)
	SetClipboardData(format uint32, mem uintptr) error
	// EnumClipboardFormats returns 0 and a nil error once the formats are exhausted.
	EnumClipboardFormats(format uint32) (uint32, error)
	CountClipboardFormats() int
	IsClipboardFormatAvailable(format uint32) bool
	RegisterClipboardFormat(name string) (uint32, error)
	// GetClipboardFormatName copies the registered name of format into name,
	// truncating to len(name)-1 units plus a NUL, and returns the number of
	// units copied.
	GetClipboardFormatName(format uint32, name []uint16) (int, error)
	GetClipboardSequenceNumber() uint32

	// GlobalAlloc allocates a moveable, zero-initialised block of size bytes.
	GlobalAlloc(size int) (uintptr, error)
	// GlobalLock locks mem and returns a view over its full size. The view
	// must not be used after GlobalUnlock.
	GlobalLock(mem uintptr) ([]byte, error)
	GlobalUnlock(mem uintptr) error
	GlobalSize(mem uintptr) int
	GlobalFree(mem uintptr) error
}
