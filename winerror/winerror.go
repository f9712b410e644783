// Package winerror turns Win32 error codes into the system's description of
// them.
package winerror

import (
	"errors"
	"unicode/utf16"

	"github.com/Microsoft/lazywinapi/internal/oserror"
)

// ErrInvalidBuffer is returned when there is no room to write a description.
var ErrInvalidBuffer = errors.New("description buffer is empty")

// Unknown is the description used when the system has none for a code.
const Unknown = "Unknown Error."

// DefaultBufferSize is the number of UTF-16 units [Describe] allows for a
// description.
const DefaultBufferSize = 512

const errorInsufficientBuffer = 122

// formatMessage is the system message lookup. It writes into buf and returns
// the number of units written, excluding the NUL.
var formatMessage = systemMessage

// DescribeTo writes the system's description of code into dst as a NUL
// terminated UTF-16 string and returns it, without trailing line breaks.
//
// If the description does not fit, the system's truncated text is kept as
// is. If the system has no description for code, [Unknown] is written instead,
// itself truncated to fit dst.
func DescribeTo(code uint32, dst []uint16) (string, error) {
	if len(dst) == 0 {
		return "", ErrInvalidBuffer
	}

	dst[0] = 0
	n, err := formatMessage(code, dst)
	if n == 0 {
		if oserror.Win32FromError(err) != errorInsufficientBuffer {
			writeUnknown(dst)
		}
		return utf16String(dst), nil
	}
	if int(n) > len(dst) {
		n = uint32(len(dst))
	}
	trimLineBreaks(dst[:n])
	return utf16String(dst), nil
}

// Describe returns the system's description of code, as [DescribeTo] with a
// buffer of [DefaultBufferSize] units.
func Describe(code uint32) string {
	s, _ := DescribeTo(code, make([]uint16, DefaultBufferSize))
	return s
}

// DescribeError describes the Win32 error code carried by err.
func DescribeError(err error) string {
	return Describe(Code(err))
}

// Code returns the Win32 error code carried by err. Errors that carry none
// map to ERROR_GEN_FAILURE, and nil maps to 0.
func Code(err error) uint32 {
	if err == nil {
		return 0
	}
	return oserror.Win32FromError(err)
}

// trimLineBreaks replaces trailing CR and LF units with NUL. The first unit is
// never touched.
func trimLineBreaks(b []uint16) {
	for i := len(b) - 1; i > 0; i-- {
		if b[i] != '\n' && b[i] != '\r' {
			return
		}
		b[i] = 0
	}
}

func writeUnknown(dst []uint16) {
	n := copy(dst[:len(dst)-1], utf16.Encode([]rune(Unknown)))
	dst[n] = 0
}

func utf16String(b []uint16) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	return string(utf16.Decode(b))
}
