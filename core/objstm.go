package core

import (
	"strconv"

	"github.com/tsawler/pdftext/pdferr"
)

// ObjectStream decodes a PDF 1.5+ object stream (/Type /ObjStm), which packs
// several indirect objects into one compressed stream for better
// compression than storing them individually.
type ObjectStream struct {
	offsets []objStmEntry
	data    []byte
	first   int
}

type objStmEntry struct {
	objNum int
	offset int
}

// NewObjectStream decodes stream per the /N (object count) and /First (byte
// offset of the first object's data) header fields, then parses the N
// (objNum, offset) pairs that precede First.
func NewObjectStream(stream *Stream) (*ObjectStream, error) {
	if typ, ok := stream.Dict.GetName("Type"); !ok || typ != "ObjStm" {
		return nil, pdferr.New(pdferr.InvalidStructure, "stream is not an object stream")
	}
	n, ok := stream.Dict.GetInt("N")
	if !ok || n < 0 {
		return nil, pdferr.New(pdferr.InvalidStructure, "object stream missing /N")
	}
	first, ok := stream.Dict.GetInt("First")
	if !ok || first < 0 {
		return nil, pdferr.New(pdferr.InvalidStructure, "object stream missing /First")
	}

	data, err := stream.Decode()
	if err != nil {
		return nil, err
	}

	lex := NewLexer(data)
	offsets := make([]objStmEntry, 0, n)
	for i := Int(0); i < n; i++ {
		numTok, err := lex.Next()
		if err != nil || numTok.Type != TokInt {
			return nil, pdferr.New(pdferr.InvalidStructure, "object stream header truncated")
		}
		offTok, err := lex.Next()
		if err != nil || offTok.Type != TokInt {
			return nil, pdferr.New(pdferr.InvalidStructure, "object stream header truncated")
		}
		num, _ := strconv.Atoi(numTok.Text)
		off, _ := strconv.Atoi(offTok.Text)
		offsets = append(offsets, objStmEntry{objNum: num, offset: off})
	}

	return &ObjectStream{offsets: offsets, data: data, first: int(first)}, nil
}

// ObjectAt parses and returns the index-th object stored in the stream.
func (o *ObjectStream) ObjectAt(index int) (Object, error) {
	if index < 0 || index >= len(o.offsets) {
		return nil, pdferr.New(pdferr.ObjectNotFound, "object stream index out of range")
	}
	start := o.first + o.offsets[index].offset
	if start < 0 || start > len(o.data) {
		return nil, pdferr.New(pdferr.InvalidStructure, "object stream offset out of range")
	}
	lex := NewLexer(o.data)
	lex.Seek(int64(start))
	return NewParser(lex).ParseObject()
}

// IndexOf returns the position of objNum within the stream's header table,
// or -1 if absent.
func (o *ObjectStream) IndexOf(objNum int) int {
	for i, e := range o.offsets {
		if e.objNum == objNum {
			return i
		}
	}
	return -1
}
