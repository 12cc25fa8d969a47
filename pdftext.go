package pdftext

import (
	"strings"

	"github.com/tsawler/pdftext/format"
	"github.com/tsawler/pdftext/model"
)

// ToText parses data as a PDF and renders the selected pages (all pages by
// default) as plain text, page renderings separated by a single LF.
func ToText(data []byte, opts ...Option) (string, error) {
	return renderPages(data, opts, func(els []model.Element) (string, error) {
		return format.Text(els), nil
	})
}

// ToMarkdown parses data as a PDF and renders the selected pages as
// Markdown.
func ToMarkdown(data []byte, opts ...Option) (string, error) {
	return renderPages(data, opts, func(els []model.Element) (string, error) {
		return format.Markdown(els), nil
	})
}

// ToCSV parses data as a PDF and renders every detected table across the
// selected pages as CSV. Headings and paragraphs have no CSV
// representation and are omitted.
func ToCSV(data []byte, opts ...Option) (string, error) {
	return renderPages(data, opts, format.CSV)
}

// ToTSV parses data as a PDF and renders every detected table across the
// selected pages as TSV.
func ToTSV(data []byte, opts ...Option) (string, error) {
	return renderPages(data, opts, func(els []model.Element) (string, error) {
		return format.TSV(els), nil
	})
}

func renderText(elements []model.Element) string {
	return format.Text(elements)
}

// renderPages extracts each selected page's elements, renders them with
// serialize, and joins the per-page renderings with a single LF.
func renderPages(data []byte, opts []Option, serialize func([]model.Element) (string, error)) (string, error) {
	doc, err := Parse(data)
	if err != nil {
		return "", err
	}
	o := newExtractOptions(opts)

	var parts []string
	for _, idx := range o.pageIndices(doc.PageCount()) {
		els, err := doc.ExtractPageElements(idx)
		if err != nil {
			return "", err
		}
		rendered, err := serialize(els)
		if err != nil {
			return "", err
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, "\n"), nil
}
