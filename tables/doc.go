// Package tables builds a [github.com/tsawler/pdftext/model.Table] from
// the spans of a run of table-candidate lines.
//
// Detection is purely positional: a global set of column anchors is found
// by clustering every span's x coordinate across all rows, tolerant of a
// small amount of jitter, and each row's spans are then assigned to their
// nearest anchor. This replaces grid-line detection, which depends on
// drawn vector lines that many PDFs never include.
package tables
