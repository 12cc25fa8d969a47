// Package layout reconstructs a page's semantic structure - headings,
// paragraphs, and tables - from the positioned spans the content
// interpreter produces.
//
// Reconstruction proceeds in three passes: spans are clustered into lines
// by vertical position, lines are classified as headings, paragraphs, or
// table candidates by font size and horizontal distribution, and adjacent
// lines of like kind are merged into [model.Element] values in reading
// order.
package layout
