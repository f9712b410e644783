//go:build windows

package winapi

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

func TestGrowLStrSucceedsFirstTry(t *testing.T) {
	calls := 0
	b, err := GrowLStr(8, 64, func(s *uint16, l *uint32) error {
		calls++
		buf := Uint16BufferToSlice(s, int(*l))
		copy(buf, []uint16{'a', 'b', 'c'})
		*l = 3
		return nil
	})
	if err != nil {
		t.Fatalf("GrowLStr failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if got := windows.UTF16ToString(b); got != "abc" || len(b) != 3 {
		t.Fatalf("unexpected buffer %v", b)
	}
}

func TestGrowLStrDoublesUntilFit(t *testing.T) {
	var sizes []uint32
	b, err := GrowLStr(2, 64, func(_ *uint16, l *uint32) error {
		sizes = append(sizes, *l)
		if *l < 10 {
			return windows.ERROR_INSUFFICIENT_BUFFER
		}
		*l = 9
		return nil
	})
	if err != nil {
		t.Fatalf("GrowLStr failed: %v", err)
	}
	if len(b) != 9 {
		t.Fatalf("expected 9 units, got %d", len(b))
	}
	want := []uint32{2, 4, 8, 16}
	if len(sizes) != len(want) {
		t.Fatalf("expected sizes %v, got %v", want, sizes)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("expected sizes %v, got %v", want, sizes)
		}
	}
}

func TestGrowLStrStopsAtLimit(t *testing.T) {
	calls := 0
	_, err := GrowLStr(4, 16, func(_ *uint16, _ *uint32) error {
		calls++
		return windows.ERROR_INSUFFICIENT_BUFFER
	})
	if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
		t.Fatalf("expected ERROR_INSUFFICIENT_BUFFER, got %v", err)
	}
	// 4, 8, 16
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestGrowLStrOtherErrorNoRetry(t *testing.T) {
	calls := 0
	_, err := GrowLStr(4, 16, func(_ *uint16, _ *uint32) error {
		calls++
		return windows.ERROR_ACCESS_DENIED
	})
	if !errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		t.Fatalf("expected ERROR_ACCESS_DENIED, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
