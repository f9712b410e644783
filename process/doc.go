// Package process reads and writes the memory of Windows processes and
// queries their executables and windows.
//
// The package never creates processes: it works on handles opened with
// [Open], on the current process ([Self]), or on handles owned by the caller
// ([FromHandle]).
package process
