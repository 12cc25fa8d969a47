package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func zlibCompress(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("zlib write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close failed: %v", err)
	}
	return buf.Bytes()
}

func TestFlateDecodeRoundTrip(t *testing.T) {
	want := "the quick brown fox jumps over the lazy dog"
	compressed := zlibCompress(t, want)

	got, err := FlateDecode(compressed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFlateDecodeRejectsGarbage(t *testing.T) {
	if _, err := FlateDecode([]byte("not zlib data")); err == nil {
		t.Fatal("expected error for malformed zlib data")
	}
}
