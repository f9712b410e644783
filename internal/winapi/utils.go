//go:build windows

package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// LockedBytes locks a global memory block and returns a view of its full
// GlobalSize. The view is only valid until the matching GlobalUnlock.
//
// A block of size 0 is reported as an empty, non-nil view without being locked,
// since GlobalLock always fails on zero-length (discarded) blocks.
func LockedBytes(mem windows.Handle) (b []byte, locked bool, err error) {
	size, err := GlobalSize(mem)
	if size == 0 {
		// GlobalSize reports 0 for discarded blocks, possibly with a stale last error.
		if err == nil || IsDiscarded(mem) {
			return []byte{}, false, nil
		}
		return nil, false, err
	}

	p, err := GlobalLock(mem)
	if err != nil {
		return nil, false, err
	}
	return unsafe.Slice(p, size), true, nil
}

// IsDiscarded reports whether mem is a valid block without memory, such as a
// moveable block allocated with zero bytes.
func IsDiscarded(mem windows.Handle) bool {
	flags, err := GlobalFlags(mem)
	return err == nil && flags&GMEM_DISCARDED != 0
}

// Uint16BufferToSlice wraps a uint16 pointer-and-length into a slice
// for easier interop with Go APIs
func Uint16BufferToSlice(buffer *uint16, bufferLength int) (result []uint16) {
	return unsafe.Slice(buffer, bufferLength)
}
