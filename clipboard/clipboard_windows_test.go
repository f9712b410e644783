//go:build windows

package clipboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

func openClipboard(t *testing.T) *Session {
	t.Helper()
	s, err := Open(context.Background())
	if err != nil {
		t.Fatalf("cannot open clipboard: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil && !errors.Is(err, ErrClosed) {
			t.Errorf("cannot close clipboard: %v", err)
		}
	})
	return s
}

func TestSequenceNumber(t *testing.T) {
	if SequenceNumber() == 0 {
		t.Fatal("cannot get sequence number")
	}
}

func TestSetTextRoundTrip(t *testing.T) {
	const text = "For my waifu!"
	s := openClipboard(t)

	if err := s.SetString(text); err != nil {
		t.Fatalf("cannot set clipboard text: %v", err)
	}
	assertOnlyFormat(t, s, CF_TEXT, len(text)+1)

	buf := make([]byte, 50)
	n, err := s.Get(CF_TEXT, buf)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != len(text)+1 {
		t.Fatalf("expected %d bytes, got %d", len(text)+1, n)
	}
	if got := DecodeString(buf[:n]); got != text {
		t.Fatalf("expected %q, got %q", text, got)
	}
}

func TestSetWideTextRoundTrip(t *testing.T) {
	const text = "For my waifu!"
	s := openClipboard(t)

	if err := s.SetWideString(text); err != nil {
		t.Fatalf("cannot set clipboard text: %v", err)
	}
	want := (len(text) + 1) * 2
	assertOnlyFormat(t, s, CF_UNICODETEXT, want)

	b, err := s.Bytes(CF_UNICODETEXT)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(b) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(b))
	}
	if got := DecodeWideString(b); got != text {
		t.Fatalf("expected %q, got %q", text, got)
	}
}

func TestGetTruncates(t *testing.T) {
	payload := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1}
	s := openClipboard(t)

	if err := s.Set(CF_TEXT, payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	buf := make([]byte, 4)
	n, err := s.Get(CF_TEXT, buf)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 4 || !bytes.Equal(buf, payload[:4]) {
		t.Fatalf("expected %v, got %v (%d)", payload[:4], buf, n)
	}
}

func TestEmpty(t *testing.T) {
	s := openClipboard(t)

	if err := s.Set(CF_TEXT, []byte("For my waifu!\x00")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertOnlyFormat(t, s, CF_TEXT, 14)

	if err := s.Empty(); err != nil {
		t.Fatalf("failed to empty clipboard: %v", err)
	}

	if f, err := s.NextFormat(0); err != nil || f != 0 {
		t.Fatalf("expected no next format, got %v, %v", f, err)
	}
	if IsFormatAvailable(CF_TEXT) {
		t.Fatal("text format shouldn't be available")
	}
	if n, _ := s.CountFormats(); n != 0 {
		t.Fatalf("expected no formats, got %d", n)
	}
	if n := s.Size(CF_TEXT); n != 0 {
		t.Fatalf("expected size 0, got %d", n)
	}
	buf := make([]byte, 50)
	if n, err := s.Get(CF_TEXT, buf); n != 0 || !errors.Is(err, ErrFormatUnavailable) {
		t.Fatalf("expected 0, ErrFormatUnavailable, got %d, %v", n, err)
	}
	if !bytes.Equal(buf, make([]byte, 50)) {
		t.Fatal("clipboard isn't empty")
	}
}

func TestRegisterFormatRoundTrip(t *testing.T) {
	const name = "testing"
	data := []byte{1, 2, 3, 55, 2}

	f, err := RegisterFormat(name)
	if err != nil {
		t.Fatalf("couldn't register new format: %v", err)
	}
	again, err := RegisterFormat(name)
	if err != nil || again != f {
		t.Fatalf("expected re-registration to return 0x%X, got 0x%X, %v", uint32(f), uint32(again), err)
	}

	buf := make([]uint16, 50)
	if n := FormatNameTo(f, buf); n != len(name) || windows.UTF16ToString(buf) != name {
		t.Fatalf("expected name %q, got %q (%d)", name, windows.UTF16ToString(buf), n)
	}

	s := openClipboard(t)
	if err := s.Set(f, data); err != nil {
		t.Fatalf("cannot set clipboard data: %v", err)
	}
	assertOnlyFormat(t, s, f, len(data))

	got := make([]byte, len(data))
	if n, err := s.Get(f, got); err != nil || n != len(data) {
		t.Fatalf("expected %d bytes, got %d, %v", len(data), n, err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %v, got %v", data, got)
	}
}

func TestSetEmptyRoundTrip(t *testing.T) {
	f, err := RegisterFormat("lazywinapi empty payload")
	if err != nil {
		t.Fatalf("couldn't register format: %v", err)
	}
	s := openClipboard(t)

	if err := s.Set(f, nil); err != nil {
		t.Fatalf("cannot set empty payload: %v", err)
	}
	if !IsFormatAvailable(f) {
		t.Fatal("empty payload format isn't available")
	}
	if n := s.Size(f); n != 0 {
		t.Fatalf("expected size 0, got %d", n)
	}
	b, err := s.Bytes(f)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if b == nil || len(b) != 0 {
		t.Fatalf("expected an empty, non-nil payload, got %v", b)
	}
	buf := []byte{7}
	if n, err := s.Get(f, buf); err != nil || n != 0 || buf[0] != 7 {
		t.Fatalf("expected 0 bytes copied, got %d, %v, %v", n, err, buf)
	}
}

func TestUnknownFormatName(t *testing.T) {
	buf := make([]uint16, 50)
	if n := FormatNameTo(0xF000+666, buf); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func assertOnlyFormat(t *testing.T, s *Session, f Format, size int) {
	t.Helper()
	if next, err := s.NextFormat(0); err != nil || next != f {
		t.Fatalf("expected next format %v, got %v, %v", f, next, err)
	}
	if !IsFormatAvailable(f) {
		t.Fatalf("format %v isn't available", f)
	}
	if n, _ := s.CountFormats(); n != 1 {
		t.Fatalf("only one format should be present, got %d", n)
	}
	if n := s.Size(f); n != size {
		t.Fatalf("expected size %d, got %d", size, n)
	}
}
