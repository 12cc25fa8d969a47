package model

// ElementKind identifies the variant of a classified page Element.
type ElementKind int

const (
	KindHeading ElementKind = iota
	KindParagraph
	KindTable
)

// Element is a classified, reading-order piece of a page: a heading, a
// paragraph, or a table. Exactly one of Text/Table is meaningful, selected
// by Kind.
type Element struct {
	Kind  ElementKind
	Level int    // 1, 2, or 3; valid only when Kind == KindHeading
	Text  string // valid when Kind == KindHeading or KindParagraph
	Table *Table // valid when Kind == KindTable
}
