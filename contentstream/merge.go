package contentstream

import (
	"sort"

	"github.com/tsawler/pdftext/model"
)

// sameLineToleranceFactor is the fraction of a span's font size within
// which two Y positions are treated as the same baseline when grouping
// spans for adjacency merging.
const sameLineToleranceFactor = 0.3

// Gap thresholds for merging horizontally adjacent spans, in estimated
// character widths: below mergeGapNoSpace the spans are glued with no
// separator, up to mergeGapSpace a single space is inserted, beyond it the
// spans stay separate.
const (
	mergeGapNoSpace = 0.8
	mergeGapSpace   = 2.0
)

// MergeAdjacent sorts spans top-to-bottom and left-to-right, then joins
// horizontally adjacent spans that share a font into single spans. PDFs
// routinely emit one show operation per word or glyph cluster; without
// this pass the layout stage would see fragments instead of words.
func MergeAdjacent(spans []model.Span) []model.Span {
	if len(spans) < 2 {
		return spans
	}

	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var out []model.Span
	i := 0
	for i < len(sorted) {
		lineY := sorted[i].Y
		j := i + 1
		for j < len(sorted) {
			tol := sameLineToleranceFactor * sorted[j].FontSize
			if abs(sorted[j].Y-lineY) > tol {
				break
			}
			j++
		}
		line := make([]model.Span, j-i)
		copy(line, sorted[i:j])
		sort.SliceStable(line, func(a, b int) bool { return line[a].X < line[b].X })
		out = append(out, mergeLine(line)...)
		i = j
	}
	return out
}

// mergeLine folds one baseline's spans left to right, gluing each span onto
// its predecessor when the horizontal gap between them (estimated from the
// predecessor's character count) is small enough and the fonts match.
func mergeLine(line []model.Span) []model.Span {
	merged := []model.Span{line[0]}
	for _, s := range line[1:] {
		cur := &merged[len(merged)-1]
		w := cur.FontSize * averageCharWidthFactor
		if s.FontName != cur.FontName || s.FontSize != cur.FontSize || w <= 0 {
			merged = append(merged, s)
			continue
		}
		end := cur.X + float64(len([]rune(cur.Text)))*w
		gap := s.X - end
		switch {
		case gap < mergeGapNoSpace*w:
			cur.Text += s.Text
		case gap <= mergeGapSpace*w:
			cur.Text += " " + s.Text
		default:
			merged = append(merged, s)
		}
	}
	return merged
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
