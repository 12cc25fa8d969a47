package model

// Span is a positioned run of decoded text emitted by the content
// interpreter: the text itself, its origin in user space, and the font
// state active when it was shown.
type Span struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	FontName string
}
