package resolver

import (
	"bytes"
	"sync"

	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/logging"
	"github.com/tsawler/pdftext/pdferr"
)

const eofScanWindow = 1024

// Resolver owns the source bytes for one document, the assembled
// cross-reference table, the newest trailer, and a cache of already-parsed
// indirect objects. It is built once from input bytes and the cache grows
// monotonically for the lifetime of extraction.
//
// A Resolver must not be used concurrently by multiple goroutines; distinct
// Resolver instances over distinct inputs require no synchronization
// between each other.
type Resolver struct {
	data    []byte
	xref    *core.XRefTable
	mu      sync.Mutex
	cache   map[core.Ref]core.Object
	objStms map[int]*core.ObjectStream
}

// New verifies the header, locates and parses the xref chain, and returns a
// ready-to-query Resolver.
func New(data []byte) (*Resolver, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, pdferr.New(pdferr.MissingHeader, "input does not begin with %PDF-")
	}

	offset, err := findStartXref(data)
	if err != nil {
		return nil, err
	}

	xref, err := core.ParseXRefChain(data, offset)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		data:    data,
		xref:    xref,
		cache:   make(map[core.Ref]core.Object),
		objStms: make(map[int]*core.ObjectStream),
	}, nil
}

// findStartXref scans the last 1024 bytes of data for the "startxref"
// marker and returns the offset that immediately follows it.
func findStartXref(data []byte) (int64, error) {
	window := data
	base := 0
	if len(data) > eofScanWindow {
		base = len(data) - eofScanWindow
		window = data[base:]
	}
	idx := bytes.LastIndex(window, []byte("startxref"))
	if idx < 0 {
		return 0, pdferr.New(pdferr.MissingEOF, "startxref marker not found in trailing region")
	}

	lex := core.NewLexer(data)
	lex.Seek(int64(base + idx + len("startxref")))
	tok, err := lex.Next()
	if err != nil || tok.Type != core.TokInt {
		return 0, pdferr.New(pdferr.MissingEOF, "startxref marker not followed by an offset")
	}
	var offset int64
	for _, c := range []byte(tok.Text) {
		offset = offset*10 + int64(c-'0')
	}
	return offset, nil
}

// Trailer returns the newest trailer dictionary.
func (r *Resolver) Trailer() core.Dict { return r.xref.Trailer }

// Resolve returns the object named by ref, following xref-table or
// object-stream lookup as needed, transparently dereferencing through
// Dict/Array containers that hold nested Refs is NOT performed here -
// callers resolve nested references explicitly via ResolveObject.
func (r *Resolver) Resolve(ref core.Ref) (core.Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(ref)
}

func (r *Resolver) resolveLocked(ref core.Ref) (core.Object, error) {
	if obj, ok := r.cache[ref]; ok {
		return obj, nil
	}

	entry, ok := r.xref.Get(ref.Num)
	if !ok || !entry.InUse {
		return nil, pdferr.NotFound(ref.Num, ref.Gen)
	}

	var obj core.Object
	var err error
	if entry.InObjStm {
		obj, err = r.resolveFromObjStmLocked(entry)
	} else {
		obj, err = r.resolveFromOffsetLocked(ref, entry)
	}
	if err != nil {
		return nil, err
	}

	r.cache[ref] = obj
	return obj, nil
}

func (r *Resolver) resolveFromOffsetLocked(ref core.Ref, entry *core.XRefEntry) (core.Object, error) {
	lex := core.NewLexer(r.data)
	lex.Seek(entry.Offset)
	parser := core.NewParser(lex)
	return parser.ParseIndirectObject(core.Ref{Num: ref.Num, Gen: entry.Generation})
}

func (r *Resolver) resolveFromObjStmLocked(entry *core.XRefEntry) (core.Object, error) {
	stm, ok := r.objStms[entry.ObjStmNum]
	if !ok {
		owner, ok := r.xref.Get(entry.ObjStmNum)
		if !ok || !owner.InUse || owner.InObjStm {
			return nil, pdferr.New(pdferr.InvalidStructure, "object stream owner is not a direct object")
		}
		ownerObj, err := r.resolveFromOffsetLocked(core.Ref{Num: entry.ObjStmNum, Gen: owner.Generation}, owner)
		if err != nil {
			return nil, err
		}
		stream, ok := ownerObj.(*core.Stream)
		if !ok {
			return nil, pdferr.New(pdferr.InvalidStructure, "object stream owner is not a stream")
		}
		stm, err = core.NewObjectStream(stream)
		if err != nil {
			return nil, err
		}
		r.objStms[entry.ObjStmNum] = stm
	}
	return stm.ObjectAt(entry.ObjStmIdx)
}

// ResolveObject follows obj if it is an indirect Ref, otherwise returns it
// unchanged. This is the usual way to read a dictionary entry that may or
// may not be indirect.
func (r *Resolver) ResolveObject(obj core.Object) (core.Object, error) {
	ref, ok := obj.(core.Ref)
	if !ok {
		return obj, nil
	}
	return r.Resolve(ref)
}

// ResolveDict resolves obj and type-asserts it to a Dict (following Stream's
// embedded dictionary too, since a Stream also satisfies dictionary access
// in callers that only need key/value pairs).
func (r *Resolver) ResolveDict(obj core.Object) (core.Dict, error) {
	resolved, err := r.ResolveObject(obj)
	if err != nil {
		return nil, err
	}
	switch v := resolved.(type) {
	case core.Dict:
		return v, nil
	case *core.Stream:
		return v.Dict, nil
	default:
		return nil, pdferr.New(pdferr.InvalidStructure, "expected a dictionary")
	}
}

// ResolveArray resolves obj and type-asserts it to an Array.
func (r *Resolver) ResolveArray(obj core.Object) (core.Array, error) {
	resolved, err := r.ResolveObject(obj)
	if err != nil {
		return nil, err
	}
	arr, ok := resolved.(core.Array)
	if !ok {
		return nil, pdferr.New(pdferr.InvalidStructure, "expected an array")
	}
	return arr, nil
}

// ResolveStream resolves obj and type-asserts it to a *Stream.
func (r *Resolver) ResolveStream(obj core.Object) (*core.Stream, error) {
	resolved, err := r.ResolveObject(obj)
	if err != nil {
		return nil, err
	}
	s, ok := resolved.(*core.Stream)
	if !ok {
		return nil, pdferr.New(pdferr.InvalidStructure, "expected a stream")
	}
	return s, nil
}

// DecodedStream resolves obj to a stream and returns its filter-decoded
// bytes.
func (r *Resolver) DecodedStream(obj core.Object) ([]byte, error) {
	s, err := r.ResolveStream(obj)
	if err != nil {
		return nil, err
	}
	data, err := s.Decode()
	if err != nil {
		logging.Warn("stream decode failed", "error", err)
		return nil, err
	}
	return data, nil
}
