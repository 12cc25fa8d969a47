package graphicsstate

import (
	"fmt"

	"github.com/tsawler/pdftext/model"
)

// TextState holds the text-positioning portion of the graphics state: the
// text matrix and line matrix, current font, and the spacing parameters
// that affect advance width.
type TextState struct {
	TextMatrix     model.Matrix
	LineMatrix     model.Matrix
	FontName       string
	FontSize       float64
	Leading        float64
	CharSpacing    float64
	WordSpacing    float64
}

// GraphicsState is the current text state plus a save/restore stack for the
// q/Q operators.
type GraphicsState struct {
	Text  TextState
	stack []TextState
}

// New returns a GraphicsState with identity matrices and a default font
// size of 12pt (PDF leaves font size and name unset until the first Tf, but
// 12pt is the conventional assumption for content that never explicitly
// sets it).
func New() *GraphicsState {
	return &GraphicsState{
		Text: TextState{
			TextMatrix: model.Identity(),
			LineMatrix: model.Identity(),
			FontSize:   12,
		},
	}
}

// Save pushes the current text state (q operator).
func (g *GraphicsState) Save() {
	g.stack = append(g.stack, g.Text)
}

// Restore pops the most recently saved text state (Q operator). An
// unbalanced Q is tolerated as a no-op, matching the interpreter's general
// leniency toward malformed content streams.
func (g *GraphicsState) Restore() {
	if len(g.stack) == 0 {
		return
	}
	g.Text = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
}

// BeginText resets the text matrix and line matrix to identity (BT).
func (g *GraphicsState) BeginText() {
	g.Text.TextMatrix = model.Identity()
	g.Text.LineMatrix = model.Identity()
}

// SetFont sets the current font name and size (Tf).
func (g *GraphicsState) SetFont(name string, size float64) {
	g.Text.FontName = name
	g.Text.FontSize = size
}

// SetLeading sets text leading (TL).
func (g *GraphicsState) SetLeading(leading float64) { g.Text.Leading = leading }

// SetCharSpacing sets character spacing (Tc).
func (g *GraphicsState) SetCharSpacing(cs float64) { g.Text.CharSpacing = cs }

// SetWordSpacing sets word spacing (Tw).
func (g *GraphicsState) SetWordSpacing(ws float64) { g.Text.WordSpacing = ws }

// MoveText implements Td: line_matrix := translate(tx, ty) x line_matrix;
// text_matrix := line_matrix.
func (g *GraphicsState) MoveText(tx, ty float64) {
	g.Text.LineMatrix = g.Text.LineMatrix.Multiply(model.Translate(tx, ty))
	g.Text.TextMatrix = g.Text.LineMatrix
}

// MoveTextSetLeading implements TD: same as Td, plus leading := -ty.
func (g *GraphicsState) MoveTextSetLeading(tx, ty float64) {
	g.Text.Leading = -ty
	g.MoveText(tx, ty)
}

// SetTextMatrix implements Tm: text_matrix := line_matrix := m.
func (g *GraphicsState) SetTextMatrix(m model.Matrix) {
	g.Text.TextMatrix = m
	g.Text.LineMatrix = m
}

// NextLine implements T*: line_matrix.f -= leading; text_matrix :=
// line_matrix.
func (g *GraphicsState) NextLine() {
	g.Text.LineMatrix.F -= g.Text.Leading
	g.Text.TextMatrix = g.Text.LineMatrix
}

// AdvanceText moves text_matrix.e by delta, the running position update
// used after every shown string and between TJ array adjustments.
func (g *GraphicsState) AdvanceText(delta float64) {
	g.Text.TextMatrix.E += delta
}

// Position returns the current text-matrix translation (e, f), i.e. where
// the next glyph would be placed.
func (g *GraphicsState) Position() (x, y float64) {
	return g.Text.TextMatrix.E, g.Text.TextMatrix.F
}

func (g *GraphicsState) String() string {
	return fmt.Sprintf("GraphicsState{font=%s@%.2f pos=(%.2f,%.2f)}",
		g.Text.FontName, g.Text.FontSize, g.Text.TextMatrix.E, g.Text.TextMatrix.F)
}
