package format

import (
	"strings"

	"github.com/tsawler/pdftext/model"
)

// Markdown renders elements as GitHub-flavored Markdown: "#"-prefixed
// headings, blank-line-separated paragraphs, and pipe tables with a
// "---" separator row.
func Markdown(elements []model.Element) string {
	var sb strings.Builder
	for _, el := range elements {
		switch el.Kind {
		case model.KindHeading:
			level := el.Level
			if level < 1 || level > 6 {
				level = 3
			}
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(el.Text)
			sb.WriteString("\n\n")
		case model.KindParagraph:
			sb.WriteString(el.Text)
			sb.WriteString("\n\n")
		case model.KindTable:
			writeMarkdownTable(&sb, el.Table)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeMarkdownTable(sb *strings.Builder, t *model.Table) {
	if t == nil || t.Cols == 0 || len(t.Rows) == 0 {
		return
	}

	// Column widths are measured on the escaped cell text, with a floor of
	// 3 so the separator row's dashes always fit.
	widths := make([]int, t.Cols)
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := len(escapeMarkdownCell(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeMarkdownRow(sb, t.Rows[0], widths)

	sep := make([]string, t.Cols)
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeMarkdownRow(sb, sep, widths)

	for _, row := range t.Rows[1:] {
		writeMarkdownRow(sb, row, widths)
	}
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")
	for i, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(padCell(escapeMarkdownCell(c), widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func padCell(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
