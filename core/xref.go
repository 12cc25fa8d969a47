package core

import (
	"strconv"

	"github.com/tsawler/pdftext/pdferr"
)

// XRefEntry locates one indirect object. For a plain in-use entry, Offset is
// the byte offset of its "N G obj" header. For an entry compressed inside an
// object stream (xref-stream type 2), InObjStm is true and ObjStmNum/ObjStmIdx
// locate it within that stream instead.
type XRefEntry struct {
	Offset     int64
	Generation int
	InUse      bool
	InObjStm   bool
	ObjStmNum  int
	ObjStmIdx  int
}

// XRefTable is the assembled object-number -> XRefEntry mapping plus the
// newest trailer dictionary encountered while walking the /Prev chain.
type XRefTable struct {
	Entries map[int]*XRefEntry
	Trailer Dict
}

// NewXRefTable returns an empty table.
func NewXRefTable() *XRefTable {
	return &XRefTable{Entries: make(map[int]*XRefEntry), Trailer: make(Dict)}
}

// Get looks up the entry for an object number.
func (t *XRefTable) Get(num int) (*XRefEntry, bool) {
	e, ok := t.Entries[num]
	return e, ok
}

// setIfAbsent implements first-writer-wins: the newest (deepest-scanned-first)
// section's entries take priority over older ones encountered later via Prev.
func (t *XRefTable) setIfAbsent(num int, e *XRefEntry) {
	if _, exists := t.Entries[num]; !exists {
		t.Entries[num] = e
	}
}

// ParseXRefChain walks the cross-reference chain starting at startOffset,
// following /Prev in each trailer to older sections, accumulating entries
// with first-writer-wins precedence. The returned trailer is the newest
// (first) one encountered. It understands both the traditional table format
// and PDF 1.5+ cross-reference streams.
func ParseXRefChain(data []byte, startOffset int64) (*XRefTable, error) {
	table := NewXRefTable()
	trailerSet := false
	visited := make(map[int64]bool)

	offset := startOffset
	for offset >= 0 {
		if visited[offset] {
			break // cyclic /Prev chain; stop rather than loop forever
		}
		visited[offset] = true

		section, prev, trailer, err := parseXRefSection(data, offset)
		if err != nil {
			return nil, err
		}
		for num, entry := range section {
			table.setIfAbsent(num, entry)
		}
		if !trailerSet {
			table.Trailer = trailer
			trailerSet = true
		}
		offset = prev
	}

	if !trailerSet {
		return nil, pdferr.New(pdferr.InvalidXref, "no xref section found")
	}
	return table, nil
}

// parseXRefSection parses one xref section (traditional or stream form) at
// offset, returning its entries, the /Prev offset (-1 if absent), and its
// trailer dictionary.
func parseXRefSection(data []byte, offset int64) (map[int]*XRefEntry, int64, Dict, error) {
	lex := NewLexer(data)
	lex.Seek(offset)

	mark := lex.Position()
	tok, err := lex.Next()
	if err != nil {
		return nil, 0, nil, pdferr.AtPosition(offset, "%s", err)
	}

	if tok.Type == TokXref {
		return parseTraditionalXRef(lex)
	}

	lex.Seek(mark)
	return parseXRefStream(lex)
}

func parseTraditionalXRef(lex *Lexer) (map[int]*XRefEntry, int64, Dict, error) {
	entries := make(map[int]*XRefEntry)

	for {
		mark := lex.Position()
		tok, err := lex.Next()
		if err != nil {
			return nil, 0, nil, pdferr.AtPosition(lex.Position(), "%s", err)
		}
		if tok.Type == TokTrailer {
			break
		}
		if tok.Type != TokInt {
			return nil, 0, nil, pdferr.AtPosition(tok.Pos, "expected subsection header or trailer")
		}
		firstNum, _ := strconv.Atoi(tok.Text)

		countTok, err := lex.Next()
		if err != nil || countTok.Type != TokInt {
			return nil, 0, nil, pdferr.AtPosition(lex.Position(), "expected subsection count")
		}
		count, _ := strconv.Atoi(countTok.Text)

		lex.SkipEOL()
		_ = mark

		for i := 0; i < count; i++ {
			line, err := lex.ReadN(20)
			if err != nil {
				return nil, 0, nil, pdferr.Wrap(pdferr.InvalidXref, "short xref entry", err)
			}
			entry, err := parseXRefEntryLine(line)
			if err != nil {
				return nil, 0, nil, err
			}
			if entry.InUse {
				entries[firstNum+i] = entry
			}
		}
	}

	trailerObj, err := NewParser(lex).ParseObject()
	if err != nil {
		return nil, 0, nil, pdferr.Wrap(pdferr.InvalidXref, "trailer dictionary", err)
	}
	trailer, ok := trailerObj.(Dict)
	if !ok {
		return nil, 0, nil, pdferr.New(pdferr.InvalidStructure, "trailer is not a dictionary")
	}

	prev := int64(-1)
	if p, ok := trailer.GetInt("Prev"); ok {
		prev = int64(p)
	}
	return entries, prev, trailer, nil
}

// parseXRefEntryLine parses one 20-byte entry:
// 10-digit offset, space, 5-digit generation, space, flag, two-byte EOL.
func parseXRefEntryLine(line []byte) (*XRefEntry, error) {
	if len(line) != 20 {
		return nil, pdferr.New(pdferr.InvalidXref, "xref entry is not 20 bytes")
	}
	offsetStr := string(line[0:10])
	genStr := string(line[11:16])
	flag := line[17]

	offset, err := strconv.ParseInt(offsetStr, 10, 64)
	if err != nil {
		return nil, pdferr.Wrap(pdferr.InvalidXref, "invalid xref offset", err)
	}
	gen, err := strconv.Atoi(genStr)
	if err != nil {
		return nil, pdferr.Wrap(pdferr.InvalidXref, "invalid xref generation", err)
	}

	switch flag {
	case 'n':
		return &XRefEntry{Offset: offset, Generation: gen, InUse: true}, nil
	case 'f':
		return &XRefEntry{Offset: offset, Generation: gen, InUse: false}, nil
	default:
		return nil, pdferr.New(pdferr.InvalidXref, "invalid xref in-use flag")
	}
}

// parseXRefStream parses a PDF 1.5+ cross-reference stream: "N G obj
// <<...>> stream ... endstream endobj" whose dictionary carries Type=XRef,
// W, Size, optionally Index and Prev.
func parseXRefStream(lex *Lexer) (map[int]*XRefEntry, int64, Dict, error) {
	parser := NewParser(lex)

	numTok, err := lex.Next()
	if err != nil || numTok.Type != TokInt {
		return nil, 0, nil, pdferr.AtPosition(lex.Position(), "expected xref stream object number")
	}
	genTok, err := lex.Next()
	if err != nil || genTok.Type != TokInt {
		return nil, 0, nil, pdferr.AtPosition(lex.Position(), "expected xref stream generation")
	}
	objTok, err := lex.Next()
	if err != nil || objTok.Type != TokObj {
		return nil, 0, nil, pdferr.AtPosition(lex.Position(), "expected 'obj' keyword")
	}

	obj, err := parser.ParseObject()
	if err != nil {
		return nil, 0, nil, pdferr.Wrap(pdferr.InvalidXref, "xref stream object", err)
	}
	stream, ok := obj.(*Stream)
	if !ok {
		return nil, 0, nil, pdferr.New(pdferr.InvalidStructure, "xref stream object is not a stream")
	}
	if typ, ok := stream.Dict.GetName("Type"); !ok || typ != "XRef" {
		return nil, 0, nil, pdferr.New(pdferr.InvalidStructure, "expected /Type /XRef")
	}

	wArr, ok := stream.Dict.GetArray("W")
	if !ok || len(wArr) != 3 {
		return nil, 0, nil, pdferr.New(pdferr.InvalidXref, "xref stream missing valid /W")
	}
	widths := make([]int, 3)
	for i, o := range wArr {
		iv, ok := o.(Int)
		if !ok {
			return nil, 0, nil, pdferr.New(pdferr.InvalidXref, "/W element is not an integer")
		}
		widths[i] = int(iv)
	}

	size, _ := stream.Dict.GetInt("Size")

	var index []int
	if idxArr, ok := stream.Dict.GetArray("Index"); ok {
		for _, o := range idxArr {
			iv, ok := o.(Int)
			if !ok {
				return nil, 0, nil, pdferr.New(pdferr.InvalidXref, "/Index element is not an integer")
			}
			index = append(index, int(iv))
		}
	} else {
		index = []int{0, int(size)}
	}

	data, err := stream.Decode()
	if err != nil {
		return nil, 0, nil, err
	}

	entries := make(map[int]*XRefEntry)
	recWidth := widths[0] + widths[1] + widths[2]
	pos := 0
	for i := 0; i+1 < len(index); i += 2 {
		first := index[i]
		count := index[i+1]
		for j := 0; j < count; j++ {
			if pos+recWidth > len(data) {
				return nil, 0, nil, pdferr.New(pdferr.InvalidXref, "truncated xref stream data")
			}
			rec := data[pos : pos+recWidth]
			pos += recWidth

			f1 := readBEWithDefault(rec[:widths[0]], 1)
			f2 := readBE(rec[widths[0] : widths[0]+widths[1]])
			f3 := readBE(rec[widths[0]+widths[1] : recWidth])

			objNum := first + j
			switch f1 {
			case 0:
				// free entry, skip
			case 1:
				entries[objNum] = &XRefEntry{Offset: f2, Generation: int(f3), InUse: true}
			case 2:
				entries[objNum] = &XRefEntry{InUse: true, InObjStm: true, ObjStmNum: int(f2), ObjStmIdx: int(f3)}
			}
		}
	}

	prev := int64(-1)
	if p, ok := stream.Dict.GetInt("Prev"); ok {
		prev = int64(p)
	}
	return entries, prev, stream.Dict, nil
}

func readBE(b []byte) int64 {
	var v int64
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return v
}

// readBEWithDefault behaves like readBE but returns def when the field
// width is zero (the spec allows a zero-width /W[0] to mean "type defaults
// to 1").
func readBEWithDefault(b []byte, def int64) int64 {
	if len(b) == 0 {
		return def
	}
	return readBE(b)
}
