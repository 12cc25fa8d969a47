package format

import (
	"strings"

	"github.com/tsawler/pdftext/model"
)

// Text renders elements as plain text: headings and paragraphs each
// followed by a blank line, tables as whitespace-padded columns separated
// by two spaces.
func Text(elements []model.Element) string {
	var sb strings.Builder
	for _, el := range elements {
		switch el.Kind {
		case model.KindHeading, model.KindParagraph:
			sb.WriteString(el.Text)
			sb.WriteString("\n\n")
		case model.KindTable:
			writePlainTable(&sb, el.Table)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writePlainTable(sb *strings.Builder, t *model.Table) {
	if t == nil || t.Cols == 0 {
		return
	}
	widths := make([]int, t.Cols)
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(cell, widths[i])
		}
		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteString("\n")
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
