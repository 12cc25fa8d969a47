// Package graphicsstate implements the text-relevant slice of the PDF
// graphics state: the text matrix and line matrix, font selection, leading,
// and character/word spacing, together with the q/Q save/restore stack.
// Non-text graphics state (fill/stroke color, line width, clipping) is
// outside this system's scope - the content interpreter never needs it to
// place text.
package graphicsstate
