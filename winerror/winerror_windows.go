package winerror

import (
	"golang.org/x/sys/windows"

	"github.com/Microsoft/lazywinapi/internal/winapi"
)

func systemMessage(code uint32, buf []uint16) (uint32, error) {
	return windows.FormatMessage(winapi.FormatMessageSystemFlags, 0, code, 0, buf, nil)
}

// Last returns the calling thread's last-error code.
//
// The Go runtime may make system calls of its own between a call and Last,
// so prefer [Code] on the error returned by the call itself.
func Last() uint32 {
	return Code(windows.GetLastError())
}
