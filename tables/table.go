package tables

import (
	"sort"
	"strings"

	"github.com/tsawler/pdftext/model"
)

// columnTolerance is the horizontal distance, in page units, within which
// two x coordinates are considered the same column anchor.
const columnTolerance = 10.0

// Build constructs a Table from a sequence of rows, each a set of spans
// believed to lie on one table line. Column anchors are derived from the
// union of every row's span positions, so columns stay aligned even when
// some rows omit a cell.
func Build(rows [][]model.Span) *model.Table {
	anchors := columnAnchors(rows)
	if len(anchors) == 0 {
		return model.NewTable(nil)
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = assignRow(row, anchors)
	}
	return model.NewTable(out)
}

// columnAnchors clusters every span's x coordinate across all rows into a
// sorted list of representative column positions.
func columnAnchors(rows [][]model.Span) []float64 {
	var xs []float64
	for _, row := range rows {
		for _, s := range row {
			xs = append(xs, s.X)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)

	var anchors []float64
	clusterStart := xs[0]
	clusterSum := xs[0]
	clusterCount := 1

	flush := func() {
		anchors = append(anchors, clusterSum/float64(clusterCount))
	}

	for _, x := range xs[1:] {
		if x-clusterStart > columnTolerance {
			flush()
			clusterStart = x
			clusterSum = x
			clusterCount = 1
			continue
		}
		clusterSum += x
		clusterCount++
	}
	flush()

	return anchors
}

// assignRow maps each span in row to its nearest column anchor, joining
// spans that land in the same column with a single space in left-to-right
// order.
func assignRow(row []model.Span, anchors []float64) []string {
	cells := make([][]string, len(anchors))

	sorted := make([]model.Span, len(row))
	copy(sorted, row)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	for _, s := range sorted {
		col := nearestAnchor(s.X, anchors)
		cells[col] = append(cells[col], s.Text)
	}

	out := make([]string, len(anchors))
	for i, parts := range cells {
		out[i] = strings.Join(parts, " ")
	}
	return out
}

func nearestAnchor(x float64, anchors []float64) int {
	best := 0
	bestDist := absFloat(x - anchors[0])
	for i := 1; i < len(anchors); i++ {
		d := absFloat(x - anchors[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
