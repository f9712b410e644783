package clipboard

import "testing"

func TestDecodeStrings(t *testing.T) {
	if s := DecodeString([]byte("abc\x00junk")); s != "abc" {
		t.Fatalf("expected abc, got %q", s)
	}
	if s := DecodeString([]byte("abc")); s != "abc" {
		t.Fatalf("expected abc, got %q", s)
	}

	b, err := encodeWideString("héllo")
	if err != nil {
		t.Fatal(err)
	}
	if s := DecodeWideString(b); s != "héllo" {
		t.Fatalf("expected héllo, got %q", s)
	}
	if s := DecodeWideString(append(b[:4:4], 'x')); s != "hé" {
		t.Fatalf("expected hé, got %q", s)
	}
}
