package font

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/logging"
)

// Font pairs a resolved Encoding with the decoding entry point spans use.
type Font struct {
	Name     string
	Encoding *Encoding
}

// DecodeString decodes a raw (possibly CID) byte string to Unicode text,
// NFC-normalized.
func (f *Font) DecodeString(data []byte) string {
	return norm.NFC.String(f.Encoding.Decode(data))
}

// Resolve builds a Font for one entry of a page's /Resources /Font
// dictionary, trying in order: a ToUnicode CMap, a named predefined
// encoding, a Differences-augmented base encoding, falling back to
// WinAnsi.
func Resolve(r streamResolver, name string, fontDict core.Dict) *Font {
	if cidMap := toUnicodeEncoding(r, fontDict); cidMap != nil {
		return &Font{Name: name, Encoding: cidMap}
	}
	return &Font{Name: name, Encoding: predefinedEncoding(fontDict)}
}

func toUnicodeEncoding(r streamResolver, fontDict core.Dict) *Encoding {
	tu := fontDict.Get("ToUnicode")
	if tu == nil {
		return nil
	}
	data, err := r.DecodedStream(tu)
	if err != nil {
		logging.Debug("ToUnicode stream decode failed", "error", err)
		return nil
	}
	cmap := ParseToUnicodeCMap(data)
	if len(cmap) == 0 {
		return nil
	}
	return &Encoding{cidMap: cmap}
}

func predefinedEncoding(fontDict core.Dict) *Encoding {
	encObj := fontDict.Get("Encoding")
	switch v := encObj.(type) {
	case core.Name:
		switch v {
		case "WinAnsiEncoding":
			return WinAnsiEncoding()
		case "MacRomanEncoding":
			return MacRomanEncoding()
		}
	case core.Dict:
		base := WinAnsiEncoding()
		if baseName, ok := v.GetName("BaseEncoding"); ok && baseName == "MacRomanEncoding" {
			base = MacRomanEncoding()
		}
		if diffArr, ok := v.GetArray("Differences"); ok {
			diffs := parseDifferences(diffArr)
			if len(diffs) > 0 {
				return WithDifferences(base, diffs)
			}
		}
		return base
	}
	return WinAnsiEncoding()
}

// parseDifferences interprets a /Differences array: a sequence of
// (Int, Name, Name, ...) runs, where each Int sets the next code and each
// following Name assigns that code (then increments) until the next Int.
func parseDifferences(arr core.Array) map[byte]string {
	diffs := make(map[byte]string)
	code := 0
	for _, item := range arr {
		switch v := item.(type) {
		case core.Int:
			code = int(v)
		case core.Name:
			if code >= 0 && code <= 255 {
				diffs[byte(code)] = string(v)
			}
			code++
		}
	}
	return diffs
}
