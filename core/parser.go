package core

import (
	"strconv"

	"github.com/tsawler/pdftext/pdferr"
)

// Parser builds PDF objects from a Lexer's token stream.
type Parser struct {
	lex *Lexer
}

// NewParser creates a parser reading from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Lexer exposes the underlying lexer, e.g. so callers can Seek it before
// parsing an indirect object at a known offset.
func (p *Parser) Lexer() *Lexer { return p.lex }

// ParseObject parses a single PDF object (possibly an indirect reference,
// resolved via one-token lookahead on a leading integer).
func (p *Parser) ParseObject() (Object, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, pdferr.AtPosition(p.lex.Position(), "%s", err)
	}
	return p.parseFromToken(tok)
}

func (p *Parser) parseFromToken(tok Token) (Object, error) {
	switch tok.Type {
	case TokNull:
		return Null{}, nil
	case TokTrue:
		return Bool(true), nil
	case TokFalse:
		return Bool(false), nil
	case TokInt:
		return p.parseIntOrRef(tok)
	case TokReal:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, pdferr.AtPosition(tok.Pos, "invalid real %q", tok.Text)
		}
		return Real(f), nil
	case TokLiteralString, TokHexString:
		return String(tok.Bytes), nil
	case TokName:
		return Name(tok.Text), nil
	case TokArrayStart:
		return p.parseArray()
	case TokDictStart:
		return p.parseDictOrStream()
	case TokEOF:
		return nil, pdferr.AtPosition(tok.Pos, "unexpected end of input")
	default:
		return nil, pdferr.AtPosition(tok.Pos, "unexpected token %v %q", tok.Type, tok.Text)
	}
}

// parseIntOrRef implements the "N G R" lookahead: on an integer, try to read
// a second integer then the R keyword. If either step fails, the lexer is
// rewound to just after the first integer and a bare Int is returned.
func (p *Parser) parseIntOrRef(tok Token) (Object, error) {
	n, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, pdferr.AtPosition(tok.Pos, "invalid integer %q", tok.Text)
	}

	mark := p.lex.Position()
	genTok, err := p.lex.Next()
	if err == nil && genTok.Type == TokInt {
		g, gerr := strconv.ParseInt(genTok.Text, 10, 64)
		if gerr == nil {
			rTok, rerr := p.lex.Next()
			if rerr == nil && rTok.Type == TokRRef {
				return Ref{Num: int(n), Gen: int(g)}, nil
			}
		}
	}
	p.lex.Seek(mark)
	return Int(n), nil
}

func (p *Parser) parseArray() (Object, error) {
	var arr Array
	for {
		mark := p.lex.Position()
		tok, err := p.lex.Next()
		if err != nil {
			return nil, pdferr.AtPosition(p.lex.Position(), "%s", err)
		}
		if tok.Type == TokArrayEnd {
			return arr, nil
		}
		if tok.Type == TokEOF {
			return nil, pdferr.AtPosition(tok.Pos, "unterminated array starting before %d", mark)
		}
		obj, err := p.parseFromToken(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

func (p *Parser) parseDictOrStream() (Object, error) {
	dict := make(Dict)
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return nil, pdferr.AtPosition(p.lex.Position(), "%s", err)
		}
		if tok.Type == TokDictEnd {
			break
		}
		if tok.Type != TokName {
			return nil, pdferr.AtPosition(tok.Pos, "dictionary key must be a name, got %v", tok.Type)
		}
		key := tok.Text
		val, err := p.ParseObject()
		if err != nil {
			return nil, err
		}
		dict[key] = val
	}

	// A dictionary followed by "stream" becomes a Stream object.
	mark := p.lex.Position()
	tok, err := p.lex.Next()
	if err != nil {
		return dict, nil
	}
	if tok.Type != TokStream {
		p.lex.Seek(mark)
		return dict, nil
	}

	p.lex.SkipEOL()
	length, ok := dict.GetInt("Length")
	var data []byte
	if ok && length >= 0 && p.lex.Position()+int64(length) <= p.lex.Len() {
		data, err = p.lex.ReadN(int(length))
		if err != nil {
			return nil, pdferr.AtPosition(p.lex.Position(), "%s", err)
		}
		// require endstream after the declared length, tolerating
		// trailing whitespace before it.
		end := p.lex.IndexFrom([]byte("endstream"))
		if end < 0 {
			return nil, pdferr.AtPosition(p.lex.Position(), "missing endstream")
		}
	} else {
		// Length is an indirect reference not yet resolvable in this
		// pass (or missing/non-integer, or runs past the end of the
		// input): fall back to scanning for the literal "endstream"
		// marker. The EOL that precedes the marker is not stream data.
		start := p.lex.Position()
		end := p.lex.IndexFrom([]byte("endstream"))
		if end < 0 {
			return nil, pdferr.AtPosition(start, "missing endstream")
		}
		data, _ = p.lex.ReadN(int(end - start))
		if n := len(data); n > 0 && data[n-1] == '\n' {
			data = data[:n-1]
		}
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data = data[:n-1]
		}
		p.lex.Seek(end)
	}

	endTok, err := p.lex.Next()
	if err != nil || endTok.Type != TokEndstream {
		return nil, pdferr.AtPosition(p.lex.Position(), "expected endstream")
	}

	return &Stream{Dict: dict, Data: data}, nil
}

// ParseIndirectObject parses "N G obj ... endobj" at the lexer's current
// position, verifying that the object/generation numbers match the
// expected reference.
func (p *Parser) ParseIndirectObject(expect Ref) (Object, error) {
	numTok, err := p.lex.Next()
	if err != nil || numTok.Type != TokInt {
		return nil, pdferr.AtPosition(p.lex.Position(), "expected object number")
	}
	genTok, err := p.lex.Next()
	if err != nil || genTok.Type != TokInt {
		return nil, pdferr.AtPosition(p.lex.Position(), "expected generation number")
	}
	objTok, err := p.lex.Next()
	if err != nil || objTok.Type != TokObj {
		return nil, pdferr.AtPosition(p.lex.Position(), "expected 'obj' keyword")
	}

	num, _ := strconv.Atoi(numTok.Text)
	gen, _ := strconv.Atoi(genTok.Text)
	if num != expect.Num || gen != expect.Gen {
		return nil, pdferr.New(pdferr.InvalidStructure, "object header mismatch: expected "+expect.String()+", got "+Ref{Num: num, Gen: gen}.String())
	}

	obj, err := p.ParseObject()
	if err != nil {
		return nil, err
	}

	// endobj is optional-tolerant: consume it if present, otherwise leave
	// the lexer where it is (some producers omit it or add junk before it).
	mark := p.lex.Position()
	tok, err := p.lex.Next()
	if err != nil || tok.Type != TokEndobj {
		p.lex.Seek(mark)
	}

	return obj, nil
}
