package font

import (
	"strconv"
	"strings"

	"github.com/tsawler/pdftext/core"
)

// ParseToUnicodeCMap parses a ToUnicode CMap stream's decoded text into a
// CID->Unicode map, per the beginbfchar/endbfchar and
// beginbfrange/endbfrange section formats.
func ParseToUnicodeCMap(data []byte) map[uint16]rune {
	out := make(map[uint16]rune)
	text := string(data)

	parseBfChar(text, out)
	parseBfRange(text, out)
	return out
}

func parseBfChar(text string, out map[uint16]rune) {
	for _, section := range sectionsBetween(text, "beginbfchar", "endbfchar") {
		toks := hexTokens(section)
		for i := 0; i+1 < len(toks); i += 2 {
			src, ok1 := parseHexUint16(toks[i])
			dst, ok2 := parseHexRune(toks[i+1])
			if ok1 && ok2 {
				out[src] = dst
			}
		}
	}
}

func parseBfRange(text string, out map[uint16]rune) {
	for _, section := range sectionsBetween(text, "beginbfrange", "endbfrange") {
		parseBfRangeSection(section, out)
	}
}

// parseBfRangeSection handles both the triple-with-scalar-destination form
// ("<lo> <hi> <dst>") and the triple-with-array-destination form
// ("<lo> <hi> [<d0> <d1> ...]").
func parseBfRangeSection(section string, out map[uint16]rune) {
	rest := section
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return
		}
		loTok, rest2, ok := nextHexToken(rest)
		if !ok {
			return
		}
		hiTok, rest3, ok := nextHexToken(rest2)
		if !ok {
			return
		}
		lo, ok1 := parseHexUint16(loTok)
		hi, ok2 := parseHexUint16(hiTok)
		if !ok1 || !ok2 {
			return
		}

		trimmed := strings.TrimSpace(rest3)
		if strings.HasPrefix(trimmed, "[") {
			end := strings.Index(trimmed, "]")
			if end < 0 {
				return
			}
			arrText := trimmed[1:end]
			dsts := hexTokens(arrText)
			for i := 0; i <= int(hi)-int(lo) && i < len(dsts); i++ {
				if r, ok := parseHexRune(dsts[i]); ok {
					out[lo+uint16(i)] = r
				}
			}
			rest = trimmed[end+1:]
			continue
		}

		dstTok, rest4, ok := nextHexToken(trimmed)
		if !ok {
			return
		}
		dst, ok := parseHexRune(dstTok)
		if !ok {
			return
		}
		for c := lo; c <= hi; c++ {
			out[c] = dst + rune(c-lo)
			if c == 0xFFFF { // guard against wraparound on pathological ranges
				break
			}
		}
		rest = rest4
	}
}

// sectionsBetween returns the text strictly between each begin/end marker
// pair, supporting multiple sections in one CMap stream.
func sectionsBetween(text, begin, end string) []string {
	var out []string
	rest := text
	for {
		bi := strings.Index(rest, begin)
		if bi < 0 {
			return out
		}
		rest = rest[bi+len(begin):]
		ei := strings.Index(rest, end)
		if ei < 0 {
			return out
		}
		out = append(out, rest[:ei])
		rest = rest[ei+len(end):]
	}
}

// nextHexToken returns the next <...> token in s along with the remainder
// of s after it.
func nextHexToken(s string) (token string, rest string, ok bool) {
	start := strings.Index(s, "<")
	if start < 0 {
		return "", s, false
	}
	end := strings.Index(s[start:], ">")
	if end < 0 {
		return "", s, false
	}
	end += start
	return s[start+1 : end], s[end+1:], true
}

// hexTokens extracts every <...> token from s, in order.
func hexTokens(s string) []string {
	var toks []string
	rest := s
	for {
		tok, r, ok := nextHexToken(rest)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
		rest = r
	}
}

func parseHexUint16(hex string) (uint16, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// parseHexRune decodes a destination hex string as UTF-16BE code units,
// returning the first decoded rune (multi-rune destinations, e.g. ligature
// expansions, are approximated by their first character).
func parseHexRune(hex string) (rune, bool) {
	if len(hex) < 4 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(v), true
	}
	raw := make([]byte, len(hex)/2)
	for i := 0; i+1 < len(hex); i += 2 {
		b, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return 0, false
		}
		raw[i/2] = byte(b)
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	if len(units) == 0 {
		return 0, false
	}
	if len(units) >= 2 && units[0] >= 0xD800 && units[0] <= 0xDBFF && units[1] >= 0xDC00 && units[1] <= 0xDFFF {
		r := 0x10000 + (rune(units[0]-0xD800) << 10) + rune(units[1]-0xDC00)
		return r, true
	}
	return rune(units[0]), true
}

// streamResolver is the minimal capability font needs to pull a ToUnicode
// stream's decoded bytes.
type streamResolver interface {
	DecodedStream(obj core.Object) ([]byte, error)
}
