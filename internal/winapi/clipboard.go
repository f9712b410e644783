//go:build windows

package winapi

// BOOL OpenClipboard(
//	HWND hWndNewOwner
// );
//
//sys OpenClipboard(newOwner windows.HWND) (err error) = user32.OpenClipboard

//sys CloseClipboard() (err error) = user32.CloseClipboard

//sys EmptyClipboard() (err error) = user32.EmptyClipboard

// HANDLE GetClipboardData(
//	UINT uFormat
// );
//
//sys GetClipboardData(format uint32) (mem windows.Handle, err error) = user32.GetClipboardData

// HANDLE SetClipboardData(
//	UINT   uFormat,
//	HANDLE hMem
// );
//
//sys SetClipboardData(format uint32, mem windows.Handle) (handle windows.Handle, err error) = user32.SetClipboardData

// EnumClipboardFormats returns 0 with ERROR_SUCCESS once the formats are
// exhausted, so a nil err with next == 0 marks the end of the enumeration.
//
//sys EnumClipboardFormats(format uint32) (next uint32, err error) = user32.EnumClipboardFormats

//sys CountClipboardFormats() (count int32) = user32.CountClipboardFormats

//sys IsClipboardFormatAvailable(format uint32) (available bool) = user32.IsClipboardFormatAvailable

//sys RegisterClipboardFormat(name string) (format uint32, err error) = user32.RegisterClipboardFormatW

// int GetClipboardFormatNameW(
//	UINT   format,
//	LPWSTR lpszFormatName,
//	int    cchMaxCount
// );
//
//sys GetClipboardFormatName(format uint32, name *uint16, maxCount int32) (n int32, err error) = user32.GetClipboardFormatNameW

//sys GetClipboardSequenceNumber() (seq uint32) = user32.GetClipboardSequenceNumber
