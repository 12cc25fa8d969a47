package layout

import (
	"strings"

	"github.com/tsawler/pdftext/model"
	"github.com/tsawler/pdftext/tables"
)

// isolatedTableMinXClusters is the horizontal-cluster floor a lone
// table-candidate line must still meet to survive as a Table element; a
// single candidate line below it reads better as an ordinary paragraph.
const isolatedTableMinXClusters = 4

// paragraphGapFactor is the maximum vertical gap between consecutive
// paragraph lines, as a multiple of the body font size, before the lines
// are treated as separate paragraphs rather than one wrapped paragraph.
const paragraphGapFactor = 1.5

// Reconstruct clusters spans into lines, classifies them, and merges
// adjacent lines of like kind into ordered Elements.
func Reconstruct(spans []model.Span) []model.Element {
	spans = dropBlank(spans)
	lines := ClusterLines(spans)
	if len(lines) == 0 {
		return nil
	}
	bodyFontSize := BodyFontSize(lines)

	classes := make([]Classification, len(lines))
	levels := make([]int, len(lines))
	for i, l := range lines {
		classes[i], levels[i] = Classify(l, bodyFontSize)
	}
	downgradeIsolatedTableRows(lines, classes)

	var elements []model.Element
	i := 0
	for i < len(lines) {
		switch classes[i] {
		case ClassHeading:
			elements = append(elements, model.Element{
				Kind:  model.KindHeading,
				Level: levels[i],
				Text:  lines[i].Text(),
			})
			i++

		case ClassTableRow:
			j := i
			for j < len(lines) && classes[j] == ClassTableRow {
				j++
			}
			elements = append(elements, model.Element{
				Kind:  model.KindTable,
				Table: tables.Build(spansOf(lines[i:j])),
			})
			i = j

		default: // ClassParagraph
			j := i + 1
			for j < len(lines) && classes[j] == ClassParagraph &&
				lines[j-1].Y-lines[j].Y <= paragraphGapFactor*bodyFontSize {
				j++
			}
			elements = append(elements, model.Element{
				Kind: model.KindParagraph,
				Text: joinLines(lines[i:j]),
			})
			i = j
		}
	}

	return elements
}

// downgradeIsolatedTableRows reclassifies a lone table-candidate line
// (one with no table-candidate neighbor) as a paragraph unless its own
// horizontal spread is wide enough to stand as a one-row table by itself.
func downgradeIsolatedTableRows(lines []Line, classes []Classification) {
	for i := range classes {
		if classes[i] != ClassTableRow {
			continue
		}
		isolated := (i == 0 || classes[i-1] != ClassTableRow) &&
			(i == len(classes)-1 || classes[i+1] != ClassTableRow)
		if isolated && lines[i].XClusterCount() < isolatedTableMinXClusters {
			classes[i] = ClassParagraph
		}
	}
}

// dropBlank removes spans whose text is empty after trimming, which would
// otherwise distort line clustering and column detection.
func dropBlank(spans []model.Span) []model.Span {
	out := spans[:0:0]
	for _, s := range spans {
		if strings.TrimSpace(s.Text) != "" {
			out = append(out, s)
		}
	}
	return out
}

func spansOf(lines []Line) [][]model.Span {
	out := make([][]model.Span, len(lines))
	for i, l := range lines {
		out[i] = l.Spans
	}
	return out
}

func joinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, " ")
}
