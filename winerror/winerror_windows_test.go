package winerror

import (
	"errors"
	"runtime"
	"testing"

	"golang.org/x/sys/windows"
)

func TestSystemDescriptions(t *testing.T) {
	for _, tc := range []struct {
		code uint32
		want string
	}{
		{0, "The operation completed successfully."},
		{1, "Incorrect function."},
		{666, Unknown},
	} {
		if got := Describe(tc.code); got != tc.want {
			t.Errorf("Describe(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

// A single unit only has room for the NUL.
func TestSystemDescriptionSizeOne(t *testing.T) {
	got, err := DescribeTo(0, make([]uint16, 1))
	if err != nil {
		t.Fatalf("DescribeTo failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}

func TestSystemDescriptionTruncated(t *testing.T) {
	got, err := DescribeTo(0, make([]uint16, 20))
	if err != nil {
		t.Fatalf("DescribeTo failed: %v", err)
	}
	if want := "The operation compl"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSystemDescriptionInvalid(t *testing.T) {
	if _, err := DescribeTo(1, nil); !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("expected ErrInvalidBuffer, got %v", err)
	}
}

func TestCodeOfErrno(t *testing.T) {
	if code := Code(windows.ERROR_ACCESS_DENIED); code != 5 {
		t.Fatalf("expected 5, got %d", code)
	}
}

func TestLast(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	name, err := windows.UTF16PtrFromString(`C:\lazywinapi\does\not\exist`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = windows.GetFileAttributes(name)
	if err == nil {
		t.Fatal("expected GetFileAttributes to fail")
	}
	want := Code(err)
	if got := Last(); got != want {
		t.Fatalf("Last() = %d, want %d (%v)", got, want, err)
	}
	if want != uint32(windows.ERROR_PATH_NOT_FOUND) {
		t.Fatalf("expected ERROR_PATH_NOT_FOUND, got %d", want)
	}
}
