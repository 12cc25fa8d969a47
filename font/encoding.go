package font

import (
	"golang.org/x/text/encoding/charmap"
)

// Encoding maps font-internal character codes to Unicode scalars. Exactly
// one of the two lookup modes is active: a CID-style encoding (cidMap
// non-nil) decodes input bytes pairwise as 16-bit CIDs; a simple encoding
// decodes byte by byte. An encoding always produces a rune, substituting
// the replacement character for unmapped codes never happens here -
// unmapped codes fall back to interpreting the raw code as its Unicode
// code point, per the decoding invariant.
type Encoding struct {
	cidMap  map[uint16]rune // nil for simple (single-byte) encodings
	byteMap func(b byte) rune
}

// IsCID reports whether this encoding decodes two bytes at a time.
func (e *Encoding) IsCID() bool { return e.cidMap != nil }

// DecodeByte decodes a single byte via a simple (single-byte) encoding.
func (e *Encoding) DecodeByte(b byte) rune {
	if e.byteMap != nil {
		return e.byteMap(b)
	}
	return rune(b)
}

// DecodeCID decodes a 16-bit character identifier via a CID map, falling
// back to the raw CID value when unmapped.
func (e *Encoding) DecodeCID(cid uint16) rune {
	if r, ok := e.cidMap[cid]; ok {
		return r
	}
	return rune(cid)
}

// Decode decodes a raw byte string using this encoding's mode: pairwise for
// CID encodings, byte-by-byte for simple encodings.
func (e *Encoding) Decode(data []byte) string {
	var out []rune
	if e.IsCID() {
		for i := 0; i+1 < len(data); i += 2 {
			cid := uint16(data[i])<<8 | uint16(data[i+1])
			out = append(out, e.DecodeCID(cid))
		}
		if len(data)%2 == 1 {
			out = append(out, e.DecodeCID(uint16(data[len(data)-1])))
		}
	} else {
		for _, b := range data {
			out = append(out, e.DecodeByte(b))
		}
	}
	return string(out)
}

// WinAnsiEncoding is the Windows-1252-based encoding PDF calls
// /WinAnsiEncoding: standard ASCII 0x20-0x7E, specific typographic glyphs in
// 0x80-0x9F, and the Latin-1 supplement 0xA0-0xFF (identical to Unicode).
func WinAnsiEncoding() *Encoding {
	return &Encoding{byteMap: charmap.Windows1252.DecodeByte}
}

// MacRomanEncoding is the classic Macintosh encoding PDF calls
// /MacRomanEncoding.
func MacRomanEncoding() *Encoding {
	return &Encoding{byteMap: charmap.Macintosh.DecodeByte}
}

// WithDifferences returns a copy of base with the given code->glyph-name
// overrides applied, resolving glyph names through the Adobe Glyph List
// subset in glyphNameTable. diffs is already expanded to one name per code
// (anchor runs of a /Differences array are unpacked by the caller); names
// this implementation does not recognize fall back to the base encoding's
// mapping for that code.
func WithDifferences(base *Encoding, diffs map[byte]string) *Encoding {
	overrides := make(map[byte]rune, len(diffs))
	for code, name := range diffs {
		if r, ok := glyphNameTable[name]; ok {
			overrides[code] = r
		}
	}
	baseMap := base.byteMap
	return &Encoding{byteMap: func(b byte) rune {
		if r, ok := overrides[b]; ok {
			return r
		}
		return baseMap(b)
	}}
}

// glyphNameTable maps a subset of Adobe Glyph List names, covering the
// printable ASCII range and the common typographic glyphs PDFs remap most
// often via /Differences.
var glyphNameTable = map[string]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"parenleft": '(', "parenright": ')', "asterisk": '*', "plus": '+',
	"comma": ',', "hyphen": '-', "period": '.', "slash": '/',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=', "greater": '>',
	"question": '?', "at": '@',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
	"quoteleft": '‘', "quoteright": '’',
	"quotedblleft": '“', "quotedblright": '”',
	"endash": '–', "emdash": '—', "bullet": '•',
	"ellipsis": '…', "dagger": '†', "daggerdbl": '‡',
	"trademark": '™', "Euro": '€', "fi": 'ﬁ', "fl": 'ﬂ',
	"florin": 'ƒ', "perthousand": '‰', "circumflex": 'ˆ',
	"tilde": '˜', "OE": 'Œ', "oe": 'œ',
	"Scaron": 'Š', "scaron": 'š', "Ydieresis": 'Ÿ',
	"Zcaron": 'Ž', "zcaron": 'ž',
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		glyphNameTable[string(c)] = c
	}
	for c := 'a'; c <= 'z'; c++ {
		glyphNameTable[string(c)] = c
	}
}
