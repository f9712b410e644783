package oserror

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isDLLError(err error) bool {
	t := &windows.DLLError{}
	return errors.As(err, &t)
}
