package winerror

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"unicode/utf16"

	"github.com/Microsoft/lazywinapi/internal/oserror"
)

func fakeMessages(t *testing.T, messages map[uint32]string) {
	t.Helper()
	prev := formatMessage
	formatMessage = func(code uint32, buf []uint16) (uint32, error) {
		msg, ok := messages[code]
		if !ok {
			return 0, syscall.Errno(317)
		}
		u := utf16.Encode([]rune(msg))
		if len(u) >= len(buf) {
			// the system truncates and reports ERROR_INSUFFICIENT_BUFFER
			n := copy(buf[:len(buf)-1], u)
			buf[n] = 0
			return 0, syscall.Errno(122)
		}
		n := copy(buf, u)
		buf[n] = 0
		return uint32(n), nil
	}
	t.Cleanup(func() { formatMessage = prev })
}

var testMessages = map[uint32]string{
	0:   "The operation completed successfully.\r\n",
	1:   "Incorrect function.\r\n",
	5:   "Access is denied.\r\n",
	999: "\r\n",
}

func TestDescribe(t *testing.T) {
	fakeMessages(t, testMessages)
	for _, tc := range []struct {
		code uint32
		want string
	}{
		{0, "The operation completed successfully."},
		{1, "Incorrect function."},
		{666, Unknown},
		// the first unit is never stripped
		{999, "\r"},
	} {
		if got := Describe(tc.code); got != tc.want {
			t.Errorf("Describe(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestDescribeTruncated(t *testing.T) {
	fakeMessages(t, testMessages)

	buf := make([]uint16, 20)
	got, err := DescribeTo(0, buf)
	if err != nil {
		t.Fatalf("DescribeTo failed: %v", err)
	}
	if want := "The operation compl"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got, err = DescribeTo(0, make([]uint16, 1))
	if err != nil {
		t.Fatalf("DescribeTo failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}

func TestDescribeUnknownTruncated(t *testing.T) {
	fakeMessages(t, testMessages)

	buf := make([]uint16, 8)
	got, err := DescribeTo(666, buf)
	if err != nil {
		t.Fatalf("DescribeTo failed: %v", err)
	}
	if want := Unknown[:7]; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if buf[7] != 0 {
		t.Fatal("description is not NUL terminated")
	}
}

func TestDescribeInvalidBuffer(t *testing.T) {
	for _, buf := range [][]uint16{nil, {}} {
		if _, err := DescribeTo(1, buf); !errors.Is(err, ErrInvalidBuffer) {
			t.Fatalf("expected ErrInvalidBuffer, got %v", err)
		}
	}
}

func TestDescribeError(t *testing.T) {
	fakeMessages(t, testMessages)

	err := fmt.Errorf("opening process: %w", oserror.New(syscall.Errno(5), "OpenProcess"))
	if code := Code(err); code != 5 {
		t.Fatalf("expected code 5, got %d", code)
	}
	if got := DescribeError(err); got != "Access is denied." {
		t.Fatalf("unexpected description %q", got)
	}
	if code := Code(nil); code != 0 {
		t.Fatalf("expected 0 for nil, got %d", code)
	}
}
