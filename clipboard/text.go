package clipboard

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

func encodeString(text string) ([]byte, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return nil, ErrInvalidString
	}
	b := make([]byte, len(text)+1)
	copy(b, text)
	return b, nil
}

func encodeWideString(text string) ([]byte, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return nil, ErrInvalidString
	}
	u := utf16.Encode([]rune(text))
	b := make([]byte, (len(u)+1)*2)
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[i*2:], c)
	}
	return b, nil
}

// DecodeString returns the [CF_TEXT] payload b up to its first NUL.
func DecodeString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// DecodeWideString returns the UTF-16 [CF_UNICODETEXT] payload b up to its
// first NUL. A trailing odd byte is ignored.
func DecodeWideString(b []byte) string {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[i*2:])
		if u[i] == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}
