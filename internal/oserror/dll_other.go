//go:build !windows

package oserror

func isDLLError(error) bool { return false }
