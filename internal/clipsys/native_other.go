//go:build !windows

package clipsys

// Native fails every call with [ErrUnsupported].
var Native API = unsupported{}

type unsupported struct{}

var _ API = unsupported{}

func (unsupported) OpenClipboard() error {
	return ErrUnsupported
}

func (unsupported) CloseClipboard() error {
	return ErrUnsupported
}

func (unsupported) EmptyClipboard() error {
	return ErrUnsupported
}

func (unsupported) GetClipboardData(uint32) (uintptr, error) {
	return 0, ErrUnsupported
}

func (unsupported) SetClipboardData(uint32, uintptr) error {
	return ErrUnsupported
}

func (unsupported) EnumClipboardFormats(uint32) (uint32, error) {
	return 0, ErrUnsupported
}

func (unsupported) CountClipboardFormats() int {
	return 0
}

func (unsupported) IsClipboardFormatAvailable(uint32) bool {
	return false
}

func (unsupported) RegisterClipboardFormat(string) (uint32, error) {
	return 0, ErrUnsupported
}

func (unsupported) GetClipboardFormatName(uint32, []uint16) (int, error) {
	return 0, ErrUnsupported
}

func (unsupported) GetClipboardSequenceNumber() uint32 {
	return 0
}

func (unsupported) GlobalAlloc(int) (uintptr, error) {
	return 0, ErrUnsupported
}

func (unsupported) GlobalLock(uintptr) ([]byte, error) {
	return nil, ErrUnsupported
}

func (unsupported) GlobalUnlock(uintptr) error {
	return ErrUnsupported
}

func (unsupported) GlobalSize(uintptr) int {
	return 0
}

func (unsupported) GlobalFree(uintptr) error {
	return ErrUnsupported
}
