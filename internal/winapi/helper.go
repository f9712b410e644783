//go:build windows

package winapi

import (
	"errors"

	"golang.org/x/sys/windows"
)

// helper functions for calling WIN32 APIS

// GrowLStr calls f with a uint16 buffer of lo units and *l = len(b). Some APIs
// (QueryFullProcessImageNameW, GetProcessImageFileNameW) fail with a "buffer
// too small" error without reporting the size they need, so the buffer is
// doubled until f succeeds or the buffer would exceed hi units.
// On success, *l must hold the number of units written, excluding the NUL.
func GrowLStr(lo, hi int, f func(s *uint16, l *uint32) error) (b []uint16, err error) {
	n := maxInt(1, lo)
	for {
		b = make([]uint16, n)
		l := uint32(n)
		err = f(&b[0], &l)
		if err == nil {
			return b[:l], nil
		}
		if !bufferTooSmall(err) || n >= hi {
			return b[:0], err
		}
		n = minInt(n*2, hi)
	}
}

func bufferTooSmall(err error) bool {
	return errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) ||
		errors.Is(err, windows.ERROR_BUFFER_OVERFLOW) ||
		errors.Is(err, windows.ERROR_INVALID_USER_BUFFER)
}

func maxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func minInt(a, b int) int {
	if a > b {
		return b
	}
	return a
}
