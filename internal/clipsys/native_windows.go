package clipsys

import (
	"golang.org/x/sys/windows"

	"github.com/Microsoft/lazywinapi/internal/winapi"
)

// Native is the Win32 implementation of [API].
var Native API = win32{}

type win32 struct{}

var _ API = win32{}

func (win32) OpenClipboard() error  { return winapi.OpenClipboard(0) }
func (win32) CloseClipboard() error { return winapi.CloseClipboard() }
func (win32) EmptyClipboard() error { return winapi.EmptyClipboard() }

func (win32) GetClipboardData(format uint32) (uintptr, error) {
	h, err := winapi.GetClipboardData(format)
	return uintptr(h), err
}

func (win32) SetClipboardData(format uint32, mem uintptr) error {
	_, err := winapi.SetClipboardData(format, windows.Handle(mem))
	return err
}

func (win32) EnumClipboardFormats(format uint32) (uint32, error) {
	return winapi.EnumClipboardFormats(format)
}

func (win32) CountClipboardFormats() int {
	return int(winapi.CountClipboardFormats())
}

func (win32) IsClipboardFormatAvailable(format uint32) bool {
	return winapi.IsClipboardFormatAvailable(format)
}

func (win32) RegisterClipboardFormat(name string) (uint32, error) {
	return winapi.RegisterClipboardFormat(name)
}

func (win32) GetClipboardFormatName(format uint32, name []uint16) (int, error) {
	if len(name) == 0 {
		return 0, windows.ERROR_INSUFFICIENT_BUFFER
	}
	n, err := winapi.GetClipboardFormatName(format, &name[0], int32(len(name)))
	return int(n), err
}

func (win32) GetClipboardSequenceNumber() uint32 {
	return winapi.GetClipboardSequenceNumber()
}

func (win32) GlobalAlloc(size int) (uintptr, error) {
	h, err := winapi.GlobalAlloc(winapi.GHND, uintptr(size))
	return uintptr(h), err
}

func (win32) GlobalLock(mem uintptr) ([]byte, error) {
	b, _, err := winapi.LockedBytes(windows.Handle(mem))
	return b, err
}

// GlobalUnlock matches GlobalLock, which never locks a zero-length block.
func (win32) GlobalUnlock(mem uintptr) error {
	h := windows.Handle(mem)
	if n, _ := winapi.GlobalSize(h); n == 0 {
		return nil
	}
	return winapi.GlobalUnlock(h)
}

func (win32) GlobalSize(mem uintptr) int {
	n, err := winapi.GlobalSize(windows.Handle(mem))
	if err != nil {
		return 0
	}
	return int(n)
}

func (win32) GlobalFree(mem uintptr) error {
	_, err := winapi.GlobalFree(windows.Handle(mem))
	return err
}
