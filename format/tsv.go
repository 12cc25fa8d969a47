package format

import (
	"strings"

	"github.com/tsawler/pdftext/model"
)

// TSV renders every table among elements as tab-separated values. A
// literal tab inside a cell's text is replaced with a single space, since
// the tab character is the field delimiter and TSV has no quoting
// convention to escape it.
func TSV(elements []model.Element) string {
	var sb strings.Builder
	for _, el := range elements {
		if el.Kind != model.KindTable || el.Table == nil {
			continue
		}
		for _, row := range el.Table.Rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = strings.ReplaceAll(cell, "\t", " ")
			}
			sb.WriteString(strings.Join(cells, "\t"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
