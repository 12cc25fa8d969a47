// Package contentstream tokenizes a decoded PDF content stream into
// operator/operand pairs and interprets the text-showing subset of those
// operators against a [github.com/tsawler/pdftext/graphicsstate.GraphicsState],
// producing positioned [github.com/tsawler/pdftext/model.Span] values.
//
// Content-stream syntax is a small subset of the full object grammar (no
// indirect references, no streams), so this package carries its own
// tokenizer rather than reusing core.Lexer.
package contentstream
