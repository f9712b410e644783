package clipsys

import (
	"testing"
)

func TestNativeZeroLengthBlock(t *testing.T) {
	mem, err := Native.GlobalAlloc(0)
	if err != nil {
		t.Fatalf("GlobalAlloc failed: %v", err)
	}
	if n := Native.GlobalSize(mem); n != 0 {
		t.Fatalf("expected size 0, got %d", n)
	}
	b, err := Native.GlobalLock(mem)
	if err != nil {
		t.Fatalf("GlobalLock failed: %v", err)
	}
	if b == nil || len(b) != 0 {
		t.Fatalf("expected an empty, non-nil view, got %v", b)
	}
	// never locked, so there is nothing to unlock
	if err := Native.GlobalUnlock(mem); err != nil {
		t.Fatalf("GlobalUnlock failed: %v", err)
	}
	if err := Native.GlobalFree(mem); err != nil {
		t.Fatalf("GlobalFree failed: %v", err)
	}
}

func TestNativeBlock(t *testing.T) {
	mem, err := Native.GlobalAlloc(3)
	if err != nil {
		t.Fatalf("GlobalAlloc failed: %v", err)
	}
	if n := Native.GlobalSize(mem); n != 3 {
		t.Fatalf("expected size 3, got %d", n)
	}
	b, err := Native.GlobalLock(mem)
	if err != nil {
		t.Fatalf("GlobalLock failed: %v", err)
	}
	copy(b, "abc")
	if err := Native.GlobalUnlock(mem); err != nil {
		t.Fatalf("GlobalUnlock failed: %v", err)
	}
	if err := Native.GlobalFree(mem); err != nil {
		t.Fatalf("GlobalFree failed: %v", err)
	}
}
