// Package oserror wraps failures of Win32 calls so that the failing call and
// its error code travel together with the error.
package oserror

import (
	"errors"
	"fmt"
	"syscall"
)

const (
	ERROR_ACCESS_DENIED = syscall.Errno(5)
	ERROR_GEN_FAILURE   = syscall.Errno(31)
	ERROR_BUSY          = syscall.Errno(170)
)

// Error records the Win32 call that failed and the error it returned.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("failed in Win32: %s (0x%x)", e.Err, Win32FromError(e.Err))
	}
	return fmt.Sprintf("%s failed in Win32: %s (0x%x)", e.Op, e.Err, Win32FromError(e.Err))
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err as a failure of op. A nil err becomes ERROR_GEN_FAILURE since
// some calls fail without setting the thread's last error.
func New(err error, op string) error {
	// Pass through DLL load errors directly since they do not originate from the call.
	if isDLLError(err) {
		return err
	}
	if err == nil {
		err = ERROR_GEN_FAILURE
	}
	return &Error{Op: op, Err: err}
}

// Win32FromError returns the Win32 error code carried by err, or
// ERROR_GEN_FAILURE if there is none.
func Win32FromError(err error) uint32 {
	if oerr := (&Error{}); errors.As(err, &oerr) {
		return Win32FromError(oerr.Err)
	}
	if code := (syscall.Errno(0)); errors.As(err, &code) {
		return uint32(code)
	}
	return uint32(ERROR_GEN_FAILURE)
}

// IsAny returns true if errors.Is is true for any of the provided errors, errs.
func IsAny(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
