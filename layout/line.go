package layout

import (
	"sort"

	"github.com/tsawler/pdftext/model"
)

// columnTolerance is the horizontal distance, in page units, within which
// two spans are considered part of the same column when clustering x
// positions for table-candidate detection.
const columnTolerance = 10.0

// Line is a cluster of spans believed to share a text baseline.
type Line struct {
	Spans    []model.Span
	Y        float64
	FontSize float64
}

// Text concatenates the line's spans in left-to-right order, separating
// every pair of adjacent spans with a single space (the content interpreter
// already merges genuinely adjacent runs, so a span boundary here is taken
// as a word boundary).
func (l Line) Text() string {
	out := ""
	for i, s := range l.Spans {
		if i > 0 {
			out += " "
		}
		out += s.Text
	}
	return out
}

// CharCount returns the total number of runes across the line's spans,
// used to weight body font size estimation.
func (l Line) CharCount() int {
	n := 0
	for _, s := range l.Spans {
		n += len([]rune(s.Text))
	}
	return n
}

// XClusterCount returns the number of distinct horizontal positions
// (within columnTolerance) among the line's spans, used to flag a line as
// a table-row candidate.
func (l Line) XClusterCount() int {
	if len(l.Spans) == 0 {
		return 0
	}
	xs := make([]float64, len(l.Spans))
	for i, s := range l.Spans {
		xs[i] = s.X
	}
	sort.Float64s(xs)

	clusters := 1
	last := xs[0]
	for _, x := range xs[1:] {
		if x-last > columnTolerance {
			clusters++
		}
		last = x
	}
	return clusters
}

// ClusterLines groups spans into lines by vertical proximity. The
// tolerance for "same line" is half the average font size across all
// spans, so larger text tolerates proportionally looser baseline
// alignment.
func ClusterLines(spans []model.Span) []Line {
	if len(spans) == 0 {
		return nil
	}

	avgFontSize := averageFontSize(spans)
	rowTolerance := avgFontSize * 0.5

	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	var current []model.Span
	currentY := sorted[0].Y

	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool { return current[i].X < current[j].X })
		lines = append(lines, Line{
			Spans:    current,
			Y:        currentY,
			FontSize: maxFontSize(current),
		})
		current = nil
	}

	for _, s := range sorted {
		if len(current) > 0 && absFloat(s.Y-currentY) > rowTolerance {
			flush()
			currentY = s.Y
		}
		current = append(current, s)
	}
	flush()

	return lines
}

func averageFontSize(spans []model.Span) float64 {
	if len(spans) == 0 {
		return 12
	}
	total := 0.0
	for _, s := range spans {
		total += s.FontSize
	}
	return total / float64(len(spans))
}

func maxFontSize(spans []model.Span) float64 {
	max := 0.0
	for _, s := range spans {
		if s.FontSize > max {
			max = s.FontSize
		}
	}
	return max
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
