// Package model holds the shared value types that flow between pipeline
// stages after content interpretation: the text matrix, positioned text
// spans, and the classified page elements (headings, paragraphs, tables)
// that the layout stage produces.
package model
