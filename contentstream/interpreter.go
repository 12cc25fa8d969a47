package contentstream

import (
	"strings"

	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/font"
	"github.com/tsawler/pdftext/graphicsstate"
	"github.com/tsawler/pdftext/model"
)

// kerningFlushThreshold is the TJ adjustment magnitude, in thousandths of a
// text-space unit, beyond which two adjacent strings are treated as
// visually separated rather than kerned. At or below it the strings are
// kept in the same span; above it the span is flushed and a new one starts.
const kerningFlushThreshold = 200

// averageCharWidthFactor estimates a shown string's advance as a fraction
// of font size per character, in the absence of the font's actual glyph
// widths table.
const averageCharWidthFactor = 0.5

// Interpreter executes the text-showing subset of content stream operators
// against a graphics state, producing positioned spans. Operators outside
// that subset (path construction, color, clipping, XObject invocation) are
// accepted but ignored.
type Interpreter struct {
	gs    *graphicsstate.GraphicsState
	fonts map[string]*font.Font
	spans []model.Span
	cur   spanBuilder
}

type spanBuilder struct {
	text     strings.Builder
	x, y     float64
	fontSize float64
	fontName string
	open     bool
}

// NewInterpreter returns an Interpreter with a fresh graphics state and the
// given font table, keyed by resource name (e.g. "F1").
func NewInterpreter(fonts map[string]*font.Font) *Interpreter {
	return &Interpreter{
		gs:    graphicsstate.New(),
		fonts: fonts,
	}
}

// Run executes ops in order and returns every span produced.
func (ip *Interpreter) Run(ops []Operation) []model.Span {
	for _, op := range ops {
		ip.exec(op)
	}
	ip.flush()
	return ip.spans
}

func (ip *Interpreter) exec(op Operation) {
	switch op.Operator {
	case "q":
		ip.gs.Save()
	case "Q":
		ip.gs.Restore()
	case "BT":
		ip.flush()
		ip.gs.BeginText()
	case "ET":
		ip.flush()
	case "Tf":
		if len(op.Operands) == 2 {
			if name, ok := op.Operands[0].(core.Name); ok {
				if size, ok := toFloat(op.Operands[1]); ok {
					ip.flush()
					ip.gs.SetFont(string(name), size)
				}
			}
		}
	case "TL":
		if len(op.Operands) == 1 {
			if v, ok := toFloat(op.Operands[0]); ok {
				ip.gs.SetLeading(v)
			}
		}
	case "Tc":
		if len(op.Operands) == 1 {
			if v, ok := toFloat(op.Operands[0]); ok {
				ip.gs.SetCharSpacing(v)
			}
		}
	case "Tw":
		if len(op.Operands) == 1 {
			if v, ok := toFloat(op.Operands[0]); ok {
				ip.gs.SetWordSpacing(v)
			}
		}
	case "Td":
		if len(op.Operands) == 2 {
			ip.flush()
			tx, _ := toFloat(op.Operands[0])
			ty, _ := toFloat(op.Operands[1])
			ip.gs.MoveText(tx, ty)
		}
	case "TD":
		if len(op.Operands) == 2 {
			ip.flush()
			tx, _ := toFloat(op.Operands[0])
			ty, _ := toFloat(op.Operands[1])
			ip.gs.MoveTextSetLeading(tx, ty)
		}
	case "Tm":
		if len(op.Operands) == 6 {
			ip.flush()
			ip.gs.SetTextMatrix(operandsToMatrix(op.Operands))
		}
	case "T*":
		ip.flush()
		ip.gs.NextLine()
	case "Tj":
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(core.String); ok {
				ip.showText([]byte(s))
				ip.flush()
			}
		}
	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(core.Array); ok {
				ip.showTextArray(arr)
				ip.flush()
			}
		}
	case "'":
		ip.flush()
		ip.gs.NextLine()
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(core.String); ok {
				ip.showText([]byte(s))
				ip.flush()
			}
		}
	case "\"":
		if len(op.Operands) == 3 {
			if ws, ok := toFloat(op.Operands[0]); ok {
				ip.gs.SetWordSpacing(ws)
			}
			if cs, ok := toFloat(op.Operands[1]); ok {
				ip.gs.SetCharSpacing(cs)
			}
			ip.flush()
			ip.gs.NextLine()
			if s, ok := op.Operands[2].(core.String); ok {
				ip.showText([]byte(s))
				ip.flush()
			}
		}
	}
}

// showText decodes and appends one string operand to the currently open
// span, opening a new one at the current text position if none is open.
func (ip *Interpreter) showText(data []byte) {
	x, y := ip.gs.Position()
	fontSize := ip.gs.Text.FontSize
	fontName := ip.gs.Text.FontName

	var decoded string
	if f, ok := ip.fonts[fontName]; ok && f != nil {
		decoded = f.DecodeString(data)
	} else {
		decoded = string(data)
	}

	if !ip.cur.open {
		ip.cur = spanBuilder{x: x, y: y, fontSize: fontSize, fontName: fontName, open: true}
	}
	ip.cur.text.WriteString(decoded)

	runeCount := float64(len([]rune(decoded)))
	advance := runeCount*fontSize*averageCharWidthFactor + runeCount*ip.gs.Text.CharSpacing
	advance += float64(strings.Count(decoded, " ")) * ip.gs.Text.WordSpacing
	ip.gs.AdvanceText(advance)
}

// showTextArray processes a TJ operand: strings are shown in sequence,
// interleaved with position adjustments given in thousandths of a text
// space unit. Adjustments beyond kerningFlushThreshold split the span;
// smaller ones are absorbed into the current one.
func (ip *Interpreter) showTextArray(arr core.Array) {
	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			ip.showText([]byte(v))
		case core.Int:
			ip.applyKerning(float64(v))
		case core.Real:
			ip.applyKerning(float64(v))
		}
	}
}

func (ip *Interpreter) applyKerning(k float64) {
	if k > kerningFlushThreshold || k < -kerningFlushThreshold {
		ip.flush()
	}
	adjustment := -k * ip.gs.Text.FontSize / 1000.0
	ip.gs.AdvanceText(adjustment)
}

func (ip *Interpreter) flush() {
	if ip.cur.open && ip.cur.text.Len() > 0 {
		ip.spans = append(ip.spans, model.Span{
			Text:     ip.cur.text.String(),
			X:        ip.cur.x,
			Y:        ip.cur.y,
			FontSize: ip.cur.fontSize,
			FontName: ip.cur.fontName,
		})
	}
	ip.cur = spanBuilder{}
}

func toFloat(obj core.Object) (float64, bool) {
	switch v := obj.(type) {
	case core.Int:
		return float64(v), true
	case core.Real:
		return float64(v), true
	default:
		return 0, false
	}
}

func operandsToMatrix(operands []core.Object) model.Matrix {
	vals := make([]float64, 6)
	for i := 0; i < 6 && i < len(operands); i++ {
		vals[i], _ = toFloat(operands[i])
	}
	return model.Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}
}
