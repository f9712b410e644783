package clipboard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/Microsoft/lazywinapi/internal/clipsys"
)

// Format identifies the encoding of a clipboard payload. Values are the OS's
// own clipboard format numbers.
type Format uint32

// Predefined clipboard formats.
const (
	CF_TEXT            Format = 1
	CF_BITMAP          Format = 2
	CF_METAFILEPICT    Format = 3
	CF_SYLK            Format = 4
	CF_DIF             Format = 5
	CF_TIFF            Format = 6
	CF_OEMTEXT         Format = 7
	CF_DIB             Format = 8
	CF_PALETTE         Format = 9
	CF_PENDATA         Format = 10
	CF_RIFF            Format = 11
	CF_WAVE            Format = 12
	CF_UNICODETEXT     Format = 13
	CF_ENHMETAFILE     Format = 14
	CF_HDROP           Format = 15
	CF_LOCALE          Format = 16
	CF_DIBV5           Format = 17
	CF_OWNERDISPLAY    Format = 0x0080
	CF_DSPTEXT         Format = 0x0081
	CF_DSPBITMAP       Format = 0x0082
	CF_DSPMETAFILEPICT Format = 0x0083
	CF_DSPENHMETAFILE  Format = 0x008E

	CF_PRIVATEFIRST Format = 0x0200
	CF_PRIVATELAST  Format = 0x02FF
	CF_GDIOBJFIRST  Format = 0x0300
	CF_GDIOBJLAST   Format = 0x03FF
)

// Registered formats are allocated by the OS in [RegisteredFirst, RegisteredLast].
const (
	RegisteredFirst Format = 0xC000
	RegisteredLast  Format = 0xFFFF
)

// maxFormatName is the longest registered format name, including the NUL.
// Registered names are global atoms, which are limited to 255 characters.
const maxFormatName = 256

var predefinedNames = map[Format]string{
	CF_TEXT:            "CF_TEXT",
	CF_BITMAP:          "CF_BITMAP",
	CF_METAFILEPICT:    "CF_METAFILEPICT",
	CF_SYLK:            "CF_SYLK",
	CF_DIF:             "CF_DIF",
	CF_TIFF:            "CF_TIFF",
	CF_OEMTEXT:         "CF_OEMTEXT",
	CF_DIB:             "CF_DIB",
	CF_PALETTE:         "CF_PALETTE",
	CF_PENDATA:         "CF_PENDATA",
	CF_RIFF:            "CF_RIFF",
	CF_WAVE:            "CF_WAVE",
	CF_UNICODETEXT:     "CF_UNICODETEXT",
	CF_ENHMETAFILE:     "CF_ENHMETAFILE",
	CF_HDROP:           "CF_HDROP",
	CF_LOCALE:          "CF_LOCALE",
	CF_DIBV5:           "CF_DIBV5",
	CF_OWNERDISPLAY:    "CF_OWNERDISPLAY",
	CF_DSPTEXT:         "CF_DSPTEXT",
	CF_DSPBITMAP:       "CF_DSPBITMAP",
	CF_DSPMETAFILEPICT: "CF_DSPMETAFILEPICT",
	CF_DSPENHMETAFILE:  "CF_DSPENHMETAFILE",
}

const (
	privatePrefix = "CF_PRIVATE"
	gdiObjPrefix  = "CF_GDIOBJ"
)

// nameRule renders the names of the formats in [first, last]. Rules are tried
// in order and the first one that renders a name wins.
type nameRule struct {
	first, last Format
	render      func(api clipsys.API, f Format) (string, bool)
}

var nameRules = []nameRule{
	{RegisteredFirst, RegisteredLast, registeredName},
	{CF_TEXT, CF_DSPENHMETAFILE, predefinedName},
	{CF_PRIVATEFIRST, CF_PRIVATELAST, indexedName(privatePrefix, CF_PRIVATEFIRST)},
	{CF_GDIOBJFIRST, CF_GDIOBJLAST, indexedName(gdiObjPrefix, CF_GDIOBJFIRST)},
}

func registeredName(api clipsys.API, f Format) (string, bool) {
	buf := make([]uint16, maxFormatName)
	n, err := api.GetClipboardFormatName(uint32(f), buf)
	if err != nil || n <= 0 {
		return "", false
	}
	return string(utf16.Decode(buf[:n])), true
}

func predefinedName(_ clipsys.API, f Format) (string, bool) {
	name, ok := predefinedNames[f]
	return name, ok
}

func indexedName(prefix string, first Format) func(clipsys.API, Format) (string, bool) {
	return func(_ clipsys.API, f Format) (string, bool) {
		return prefix + strconv.FormatUint(uint64(f-first), 10), true
	}
}

func resolveName(api clipsys.API, f Format) (string, bool) {
	for _, r := range nameRules {
		if f < r.first || f > r.last {
			continue
		}
		if name, ok := r.render(api, f); ok {
			return name, true
		}
	}
	return "", false
}

// formatNameTo writes the name of f into dst as UTF-16, clipped to
// len(dst)-1 units and NUL terminated, and returns the number of units
// written before the NUL. Unknown formats and an empty dst yield 0.
func formatNameTo(api clipsys.API, f Format, dst []uint16) int {
	if len(dst) == 0 {
		return 0
	}
	name, ok := resolveName(api, f)
	if !ok {
		dst[0] = 0
		return 0
	}
	n := copy(dst[:len(dst)-1], utf16.Encode([]rune(name)))
	dst[n] = 0
	return n
}

// FormatNameTo writes the name of f into dst, truncating it to len(dst)-1
// UTF-16 units followed by a NUL, and returns the length of the written name.
//
// Names of registered formats are looked up from the OS. Predefined formats
// use their constant's name, and formats in the private and GDI object ranges
// are rendered as "CF_PRIVATE<k>" and "CF_GDIOBJ<k>", where k is the offset
// into the range. Anything else returns 0.
func FormatNameTo(f Format, dst []uint16) int {
	return formatNameTo(sys, f, dst)
}

// FormatName returns the name of f, as described by [FormatNameTo].
func FormatName(f Format) (string, bool) {
	return resolveName(sys, f)
}

// String returns the name of f, or its number if it has no name.
func (f Format) String() string {
	if name, ok := FormatName(f); ok {
		return name
	}
	return fmt.Sprintf("Format(0x%04X)", uint32(f))
}

// ParseFormat parses a format given either by number (decimal, or prefixed
// with 0x), by predefined name ("CF_TEXT"), or by indexed name
// ("CF_PRIVATE3", "CF_GDIOBJ0"). Names are matched case-insensitively.
// Registered formats must be given by number or resolved with [RegisterFormat].
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty clipboard format")
	}
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Format(v), nil
	}

	upper := strings.ToUpper(s)
	for f, name := range predefinedNames {
		if name == upper {
			return f, nil
		}
	}
	for _, r := range []struct {
		prefix      string
		first, last Format
	}{
		{privatePrefix, CF_PRIVATEFIRST, CF_PRIVATELAST},
		{gdiObjPrefix, CF_GDIOBJFIRST, CF_GDIOBJLAST},
	} {
		idx, ok := strings.CutPrefix(upper, r.prefix)
		if !ok {
			continue
		}
		k, err := strconv.ParseUint(idx, 10, 32)
		if err != nil || Format(k) > r.last-r.first {
			return 0, fmt.Errorf("clipboard format %q out of range", s)
		}
		return r.first + Format(k), nil
	}
	return 0, fmt.Errorf("unknown clipboard format %q", s)
}
