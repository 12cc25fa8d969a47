package contentstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tsawler/pdftext/core"
)

// Operation is a single content stream instruction: an operator together
// with the operands that preceded it.
type Operation struct {
	Operator string
	Operands []core.Object
}

// Parser tokenizes a content stream into a sequence of Operations.
type Parser struct {
	data         []byte
	pos          int
	ops          []Operation
	operandStack []core.Object
}

// NewParser returns a Parser over data, the decoded bytes of one or more
// concatenated content streams.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse scans the entire content stream and returns its operations in
// order. A malformed operand or operator stops the scan and returns an
// error describing the offending position; operations collected up to
// that point are discarded, since a truncated token list could otherwise
// be mistaken for a complete one.
func (p *Parser) Parse() ([]Operation, error) {
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.parseNext(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

func (p *Parser) parseNext() error {
	start := p.pos
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil
	}

	c := p.data[p.pos]

	if c == '%' {
		p.skipComment()
		return nil
	}

	if isLetter(c) || c == '\'' || c == '"' {
		return p.parseOperator()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return fmt.Errorf("content stream at position %d: %w", start, err)
	}
	p.operandStack = append(p.operandStack, operand)
	return nil
}

func (p *Parser) skipComment() {
	for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
		p.pos++
	}
}

// parseOperator reads an operator name. BI...EI inline images are skipped
// wholesale: their binary payload isn't delimited by the normal token
// grammar and they carry no text content relevant to extraction.
func (p *Parser) parseOperator() error {
	start := p.pos
	var op bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || c == '\'' || c == '"' || c == '*' {
			op.WriteByte(c)
			p.pos++
		} else {
			break
		}
	}

	operator := op.String()
	if operator == "" {
		return fmt.Errorf("empty operator at position %d", start)
	}

	if operator == "BI" {
		p.skipInlineImage()
		p.operandStack = nil
		return nil
	}

	operation := Operation{
		Operator: operator,
		Operands: append([]core.Object(nil), p.operandStack...),
	}
	p.ops = append(p.ops, operation)
	p.operandStack = nil
	return nil
}

// skipInlineImage consumes bytes up to and including the "EI" that
// terminates a BI/ID/EI inline image, the simplest robust way to skip
// payload data whose length isn't known up front.
func (p *Parser) skipInlineImage() {
	marker := []byte("EI")
	idx := bytes.Index(p.data[p.pos:], marker)
	if idx < 0 {
		p.pos = len(p.data)
		return
	}
	p.pos += idx + len(marker)
}

func (p *Parser) parseOperand() (core.Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of content stream")
	}

	c := p.data[p.pos]

	switch {
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '<':
		return p.parseDict()
	case c == '<':
		return p.parseHexString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	}

	if c == 't' || c == 'f' || c == 'n' {
		end := p.pos
		for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
			end++
		}
		switch string(p.data[p.pos:end]) {
		case "true":
			p.pos = end
			return core.Bool(true), nil
		case "false":
			p.pos = end
			return core.Bool(false), nil
		case "null":
			p.pos = end
			return core.Null{}, nil
		}
	}

	return nil, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
}

func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	hasDecimal := false

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])
	if hasDecimal {
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", numStr, err)
		}
		return core.Real(val), nil
	}
	val, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", numStr, err)
	}
	return core.Int(val), nil
}

func (p *Parser) parseString() (core.Object, error) {
	p.pos++ // skip '('
	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]

		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case 'b':
				result.WriteByte('\b')
			case 'f':
				result.WriteByte('\f')
			case '(', ')', '\\':
				result.WriteByte(next)
			case '\r', '\n':
				// line continuation: emit nothing, and consume a CRLF pair
				if next == '\r' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '\n' {
					p.pos++
				}
			default:
				if next >= '0' && next <= '7' {
					val := int(next - '0')
					for i := 0; i < 2 && p.pos+1 < len(p.data) && p.data[p.pos+1] >= '0' && p.data[p.pos+1] <= '7'; i++ {
						p.pos++
						val = val*8 + int(p.data[p.pos]-'0')
					}
					result.WriteByte(byte(val))
				} else {
					result.WriteByte(next)
				}
			}
			p.pos++
		case c == '(':
			depth++
			result.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
			p.pos++
		default:
			result.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed literal string")
	}
	return core.String(result.Bytes()), nil
}

func (p *Parser) parseHexString() (core.Object, error) {
	p.pos++ // skip '<'
	var result bytes.Buffer

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			break
		}
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		p.pos++

		for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
			p.pos++
		}
		if p.pos >= len(p.data) || p.data[p.pos] == '>' {
			result.WriteByte(hexValue(c) << 4)
			continue
		}
		c2 := p.data[p.pos]
		if !isHexDigit(c2) {
			return nil, fmt.Errorf("invalid hex digit %q", c2)
		}
		result.WriteByte((hexValue(c) << 4) | hexValue(c2))
		p.pos++
	}

	return core.String(result.Bytes()), nil
}

func (p *Parser) parseName() (core.Object, error) {
	p.pos++ // skip '/'
	var result bytes.Buffer

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) && isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte((hexValue(p.data[p.pos+1]) << 4) | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		result.WriteByte(c)
		p.pos++
	}

	return core.Name(result.String()), nil
}

func (p *Parser) parseArray() (core.Object, error) {
	p.pos++ // skip '['
	var arr core.Array

	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unterminated array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			break
		}
		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
	return arr, nil
}

func (p *Parser) parseDict() (core.Object, error) {
	p.pos += 2 // skip '<<'
	dict := make(core.Dict)

	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			break
		}
		if p.pos >= len(p.data) || p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}
		key, err := p.parseName()
		if err != nil {
			return nil, err
		}
		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(core.Name))] = value
	}
	return dict, nil
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
