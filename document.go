// Package pdftext extracts text, reconstructed layout, and tables from PDF
// documents, and serializes the result to plain text, Markdown, CSV, or
// TSV.
package pdftext

import (
	"github.com/tsawler/pdftext/contentstream"
	"github.com/tsawler/pdftext/font"
	"github.com/tsawler/pdftext/layout"
	"github.com/tsawler/pdftext/model"
	"github.com/tsawler/pdftext/pages"
	"github.com/tsawler/pdftext/pdferr"
	"github.com/tsawler/pdftext/resolver"
)

// Document is a parsed PDF ready for per-page extraction. Parsing resolves
// the cross-reference chain and walks the page tree up front; content
// streams are interpreted lazily, one page at a time.
type Document struct {
	resolver *resolver.Resolver
	pages    []pages.Page
}

// Parse parses the raw bytes of a PDF file into a Document.
func Parse(data []byte) (*Document, error) {
	r, err := resolver.New(data)
	if err != nil {
		return nil, err
	}
	pgs, err := pages.Walk(r)
	if err != nil {
		return nil, err
	}
	return &Document{resolver: r, pages: pgs}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// ExtractPageSpans runs the content interpreter over one page (0-indexed)
// and returns its positioned text spans, sorted top-to-bottom with
// adjacent fragments merged into words, before layout reconstruction.
func (d *Document) ExtractPageSpans(index int) ([]model.Span, error) {
	page, err := d.page(index)
	if err != nil {
		return nil, err
	}

	content, err := pages.Contents(d.resolver, page)
	if err != nil {
		return nil, err
	}

	ops, err := contentstream.NewParser(content).Parse()
	if err != nil {
		return nil, pdferr.Wrap(pdferr.Parse, "parsing content stream", err)
	}

	fonts := d.fontsForPage(page)
	spans := contentstream.NewInterpreter(fonts).Run(ops)
	return contentstream.MergeAdjacent(spans), nil
}

// ExtractPageElements reconstructs one page's layout into an ordered
// sequence of headings, paragraphs, and tables.
func (d *Document) ExtractPageElements(index int) ([]model.Element, error) {
	spans, err := d.ExtractPageSpans(index)
	if err != nil {
		return nil, err
	}
	return layout.Reconstruct(spans), nil
}

// ExtractPageText returns a page's plain-text rendering.
func (d *Document) ExtractPageText(index int) (string, error) {
	elements, err := d.ExtractPageElements(index)
	if err != nil {
		return "", err
	}
	return renderText(elements), nil
}

func (d *Document) page(index int) (pages.Page, error) {
	if index < 0 || index >= len(d.pages) {
		return pages.Page{}, pdferr.New(pdferr.InvalidStructure, "page index out of range")
	}
	return d.pages[index], nil
}

// fontsForPage resolves every font named in a page's /Resources /Font
// dictionary. A font that fails to resolve is skipped rather than failing
// the whole page: the interpreter falls back to raw-byte decoding for
// spans using it.
func (d *Document) fontsForPage(p pages.Page) map[string]*font.Font {
	fonts := make(map[string]*font.Font)
	if p.Resources == nil {
		return fonts
	}

	fontDictObj := p.Resources.Get("Font")
	if fontDictObj == nil {
		return fonts
	}
	fontDict, err := d.resolver.ResolveDict(fontDictObj)
	if err != nil {
		return fonts
	}

	for name, ref := range fontDict {
		fd, err := d.resolver.ResolveDict(ref)
		if err != nil {
			continue
		}
		f := font.Resolve(d.resolver, name, fd)
		fonts[name] = f
		fonts["/"+name] = f
	}
	return fonts
}
