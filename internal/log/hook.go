package log

import (
	"fmt"
	"reflect"
	"time"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
)

const nullString = "null"

// Hook intercepts and formats a [logrus.Entry] before it is logged.
//
// Clipboard payloads and process memory are logged as []byte fields; the hook
// turns them into bounded hex previews so that a large read does not flood
// the output.
type Hook struct {
	// EncodeAsJSON formats structs, maps, arrays, and slices (other than []byte) as JSON.
	//
	// Default is true.
	EncodeAsJSON bool

	// TimeFormat specifies the format for [time.Time] variables.
	// An empty string disables formatting.
	//
	// Default is [github.com/containerd/log.RFC3339NanoFixed].
	TimeFormat string

	// BytesPreview is the number of leading bytes kept when a []byte field is
	// hex encoded. Zero or less keeps the whole payload.
	//
	// Default is [DefaultBytesPreview].
	BytesPreview int

	// Whether to encode errors or keep them as is.
	EncodeError bool
}

var _ logrus.Hook = &Hook{}

func NewHook() *Hook {
	return &Hook{
		EncodeAsJSON: true,
		TimeFormat:   log.RFC3339NanoFixed,
		BytesPreview: DefaultBytesPreview,
	}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) (err error) {
	h.encode(e)
	return nil
}

// encode loops through all the fields in the [logrus.Entry] and encodes them according to
// the settings in [Hook].
func (h *Hook) encode(e *logrus.Entry) {
	d := e.Data

	for k, v := range d {
		if err, ok := v.(error); k == logrus.ErrorKey || ok {
			if h.EncodeError && ok {
				d[k] = err.Error()
			}
			continue
		}

		switch vv := v.(type) {
		case []byte:
			d[k] = FormatBytes(vv, h.BytesPreview)
			continue
		case time.Time:
			if h.TimeFormat != "" {
				d[k] = vv.Format(h.TimeFormat)
			}
			continue
		case fmt.Stringer:
			d[k] = vv.String()
			continue
		case bool, string, uintptr,
			int8, int16, int32, int64, int,
			uint8, uint16, uint32, uint64, uint,
			float32, float64, time.Duration:
			continue
		}

		if !h.EncodeAsJSON {
			continue
		}

		// dereference any pointers
		rv := reflect.Indirect(reflect.ValueOf(v))
		// check if `v` is a null pointer
		if !rv.IsValid() {
			d[k] = nullString
			continue
		}

		switch rv.Kind() {
		case reflect.Map, reflect.Struct, reflect.Array, reflect.Slice:
		default:
			continue
		}

		b, err := encode(v)
		if err != nil {
			// keep processing the remaining fields
			d[k+"-"+logrus.ErrorKey] = err.Error()
		}

		// if  `err != nil`, then `b == nil` and this will be the empty string
		d[k] = string(b)
	}
}
