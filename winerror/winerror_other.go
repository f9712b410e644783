//go:build !windows

package winerror

import "syscall"

func systemMessage(uint32, []uint16) (uint32, error) {
	return 0, syscall.ENOSYS
}

// Last always returns 0 outside of Windows.
func Last() uint32 {
	return 0
}
