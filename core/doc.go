// Package core implements the lexical and object layer of PDF syntax: the
// token reader, the eight PDF object types, the object parser, stream
// filter dispatch, and cross-reference table/stream parsing.
//
// # Object model
//
// Every PDF value satisfies [Object]. The concrete types are [Null], [Bool],
// [Int], [Real], [String], [Name], [Array], [Dict], [Stream], and [Ref] (an
// indirect reference). [Dict] doubles as the representation for both plain
// dictionaries and stream dictionaries; [Stream] pairs a [Dict] with its raw
// (possibly filtered) byte payload.
//
// # Lexing and parsing
//
// [Lexer] tokenizes a byte slice on demand and supports random access via
// [Lexer.Seek], which the indirect-object resolution path relies on.
// [Parser] consumes a [Lexer]'s tokens and builds [Object] values, including
// the one-token lookahead needed to distinguish a bare integer from the
// first number of an indirect reference "5 0 R".
//
// # Cross-reference tables
//
// [XRefTable] holds the merged object-number -> [XRefEntry] mapping plus the
// newest trailer [Dict]. [ParseXRefChain] walks the traditional-table and
// xref-stream formats, following /Prev, with first-writer-wins precedence.
package core
