package pages

import (
	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/pdferr"
)

// ObjectResolver is the subset of resolver.Resolver this package needs. It
// is expressed as an interface so pages can be tested without a full
// document and so it never imports resolver (resolver sits below pages in
// the dependency graph only informally; this keeps the import direction
// explicit and one-way).
type ObjectResolver interface {
	Trailer() core.Dict
	ResolveObject(obj core.Object) (core.Object, error)
	ResolveDict(obj core.Object) (core.Dict, error)
	ResolveArray(obj core.Object) (core.Array, error)
}

// Page is one leaf node of the page tree, with its resolved dictionary and
// its effective Resources dictionary (the page's own /Resources, or the
// nearest ancestor Pages node's if the page omits it, per inheritance).
type Page struct {
	Dict      core.Dict
	Ref       core.Ref
	Resources core.Dict
}

// Walk returns the ordered leaf pages reached from the catalog referenced
// by the trailer's /Root. The traversal order is exactly the order Kids
// arrays list their children, applied recursively (depth-first), which is
// what defines "page count" regardless of any /Count field present.
func Walk(r ObjectResolver) ([]Page, error) {
	root, ok := r.Trailer().GetRef("Root")
	if !ok {
		// Some producers embed the catalog directly (non-conformant but
		// tolerated): fall back to a direct dictionary.
		catalog, err := r.ResolveDict(r.Trailer().Get("Root"))
		if err != nil {
			return nil, pdferr.New(pdferr.InvalidStructure, "trailer missing /Root")
		}
		return walkFromCatalog(r, catalog)
	}

	catalog, err := r.ResolveDict(root)
	if err != nil {
		return nil, pdferr.Wrap(pdferr.InvalidStructure, "resolving /Root", err)
	}
	return walkFromCatalog(r, catalog)
}

func walkFromCatalog(r ObjectResolver, catalog core.Dict) ([]Page, error) {
	pagesRootObj := catalog.Get("Pages")
	if pagesRootObj == nil {
		return nil, pdferr.New(pdferr.InvalidStructure, "catalog missing /Pages")
	}

	var out []Page
	visited := make(map[core.Ref]bool)
	if err := visit(r, pagesRootObj, visited, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// visit walks the page tree, threading down the nearest ancestor's
// /Resources so that pages which omit their own (relying on inheritance,
// as the spec permits) still resolve fonts correctly.
func visit(r ObjectResolver, obj core.Object, visited map[core.Ref]bool, inheritedResources core.Dict, out *[]Page) error {
	var selfRef core.Ref
	hasRef := false
	if ref, ok := obj.(core.Ref); ok {
		if visited[ref] {
			return pdferr.New(pdferr.InvalidStructure, "cyclic page tree")
		}
		visited[ref] = true
		selfRef = ref
		hasRef = true
	}

	node, err := r.ResolveDict(obj)
	if err != nil {
		return pdferr.Wrap(pdferr.InvalidStructure, "resolving page tree node", err)
	}

	typeName, hasType := node.GetName("Type")
	isPages := hasType && typeName == "Pages"
	isPage := hasType && typeName == "Page"
	if !hasType {
		// A node lacking /Type is a leaf if it has /Contents or /MediaBox.
		isPage = node.Has("Contents") || node.Has("MediaBox")
	}

	ownResources, err := r.ResolveDict(node.Get("Resources"))
	if err != nil {
		ownResources = nil
	}
	effectiveResources := inheritedResources
	if ownResources != nil {
		effectiveResources = ownResources
	}

	if isPages || (!hasType && !isPage) {
		kidsObj := node.Get("Kids")
		if kidsObj == nil {
			return pdferr.New(pdferr.InvalidStructure, "/Pages node missing /Kids")
		}
		kids, err := r.ResolveArray(kidsObj)
		if err != nil {
			return pdferr.Wrap(pdferr.InvalidStructure, "resolving /Kids", err)
		}
		for _, kid := range kids {
			if err := visit(r, kid, visited, effectiveResources, out); err != nil {
				return err
			}
		}
		return nil
	}

	ref := selfRef
	if !hasRef {
		ref = core.Ref{Num: -1, Gen: -1}
	}
	*out = append(*out, Page{Dict: node, Ref: ref, Resources: effectiveResources})
	return nil
}

// Contents returns the concatenated, filter-decoded byte buffer of a
// page's /Contents entry, which may be a single stream reference or an
// array of stream references. When it is an array, the decoded buffers are
// concatenated with a single LF between them.
func Contents(r interface {
	ResolveObject(core.Object) (core.Object, error)
	ResolveArray(core.Object) (core.Array, error)
	DecodedStream(core.Object) ([]byte, error)
}, page Page) ([]byte, error) {
	contentsObj := page.Dict.Get("Contents")
	if contentsObj == nil {
		return nil, nil
	}

	resolved, err := r.ResolveObject(contentsObj)
	if err != nil {
		return nil, err
	}

	switch v := resolved.(type) {
	case *core.Stream:
		return v.Decode()
	case core.Array:
		var buf []byte
		for i, item := range v {
			data, err := r.DecodedStream(item)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				buf = append(buf, '\n')
			}
			buf = append(buf, data...)
		}
		return buf, nil
	default:
		return nil, pdferr.New(pdferr.InvalidStructure, "Contents is neither a stream nor an array")
	}
}
