package log

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DefaultBytesPreview is the number of leading bytes of a payload rendered by
// [FormatBytes] before the output is elided.
const DefaultBytesPreview = 32

// FormatBytes renders at most max leading bytes of b as hex, followed by the
// total length when b was cut short. A max <= 0 renders all of b.
func FormatBytes(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%s...(%d bytes)", hex.EncodeToString(b[:max]), len(b))
}

// Format formats an object into a JSON string, without any indentation or
// HTML escapes.
// Context is used to output a log warning if the conversion fails.
func Format(ctx context.Context, v interface{}) string {
	b, err := encode(v)
	if err != nil {
		G(ctx).WithError(err).Warning("could not format value")
		return ""
	}

	return string(b)
}

func encode(v interface{}) ([]byte, error) {
	return encodeBuffer(&bytes.Buffer{}, v)
}

func encodeBuffer(buf *bytes.Buffer, v interface{}) ([]byte, error) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "")

	if err := enc.Encode(v); err != nil {
		err = fmt.Errorf("could not marshall %T to JSON for logging: %w", v, err)
		return nil, err
	}

	// encoder.Encode appends a newline to the end
	return bytes.TrimSpace(buf.Bytes()), nil
}
