package font

import "testing"

func TestWinAnsiEncodingASCII(t *testing.T) {
	enc := WinAnsiEncoding()
	if enc.Decode([]byte("Hello")) != "Hello" {
		t.Errorf("got %q", enc.Decode([]byte("Hello")))
	}
}

func TestMacRomanEncodingASCII(t *testing.T) {
	enc := MacRomanEncoding()
	if enc.Decode([]byte("Hi")) != "Hi" {
		t.Errorf("got %q", enc.Decode([]byte("Hi")))
	}
}

func TestEncodingIsCID(t *testing.T) {
	simple := WinAnsiEncoding()
	if simple.IsCID() {
		t.Error("expected simple encoding to report IsCID() == false")
	}
	cid := &Encoding{cidMap: map[uint16]rune{1: 'A'}}
	if !cid.IsCID() {
		t.Error("expected CID encoding to report IsCID() == true")
	}
}

func TestDecodeCIDFallsBackToRawCode(t *testing.T) {
	enc := &Encoding{cidMap: map[uint16]rune{1: 'A'}}
	if r := enc.DecodeCID(1); r != 'A' {
		t.Errorf("got %q, want 'A'", r)
	}
	if r := enc.DecodeCID(99); r != rune(99) {
		t.Errorf("got %q, want rune(99)", r)
	}
}

func TestDecodeCIDPairwise(t *testing.T) {
	enc := &Encoding{cidMap: map[uint16]rune{0x0041: 'Z'}}
	out := enc.Decode([]byte{0x00, 0x41})
	if out != "Z" {
		t.Errorf("got %q, want %q", out, "Z")
	}
}

func TestWithDifferencesOverridesBase(t *testing.T) {
	base := WinAnsiEncoding()
	diffs := map[byte]string{0x41: "bullet"}
	enc := WithDifferences(base, diffs)
	if r := enc.DecodeByte(0x41); r != '•' {
		t.Errorf("got %q, want bullet", r)
	}
	// Unaffected codes still fall through to the base encoding.
	if r := enc.DecodeByte(0x42); r != 'B' {
		t.Errorf("got %q, want 'B'", r)
	}
}

func TestWithDifferencesUnknownGlyphFallsBackToBase(t *testing.T) {
	base := WinAnsiEncoding()
	diffs := map[byte]string{0x41: "some-unrecognized-glyph-name"}
	enc := WithDifferences(base, diffs)
	if r := enc.DecodeByte(0x41); r != 'A' {
		t.Errorf("got %q, want base 'A' for unrecognized glyph name", r)
	}
}
