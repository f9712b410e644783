//go:build windows

package winapi

// GlobalAlloc flags.
const (
	GMEM_MOVEABLE = 0x0002
	GMEM_ZEROINIT = 0x0040
	GHND          = GMEM_MOVEABLE | GMEM_ZEROINIT
)

// GlobalFlags results.
const (
	GMEM_DISCARDED      = 0x4000
	GMEM_INVALID_HANDLE = 0x8000
)

// DECLSPEC_ALLOCATOR HGLOBAL GlobalAlloc(
//	UINT   uFlags,
//	SIZE_T dwBytes
// );
//
//sys GlobalAlloc(flags uint32, size uintptr) (mem windows.Handle, err error) = kernel32.GlobalAlloc

// GlobalFree returns NULL on success.
//
//sys GlobalFree(mem windows.Handle) (handle windows.Handle, err error) [failretval!=0] = kernel32.GlobalFree

//sys GlobalLock(mem windows.Handle) (ptr *byte, err error) = kernel32.GlobalLock

// GlobalUnlock returns FALSE with ERROR_SUCCESS once the lock count drops to
// zero, which errnoErr maps to a nil error.
//
//sys GlobalUnlock(mem windows.Handle) (err error) = kernel32.GlobalUnlock

//sys GlobalSize(mem windows.Handle) (size uintptr, err error) = kernel32.GlobalSize

// A moveable block allocated with zero bytes is reported as discarded.
//
//sys GlobalFlags(mem windows.Handle) (flags uint32, err error) [failretval==GMEM_INVALID_HANDLE] = kernel32.GlobalFlags
