// Package format renders a reconstructed page's elements to a target text
// representation: plain text, Markdown, CSV, or TSV.
package format
