package format

import (
	"bytes"
	"encoding/csv"

	"github.com/tsawler/pdftext/model"
)

// CSV renders every table among elements as RFC4180 CSV, one after
// another. Non-table elements (headings, paragraphs) are not
// representable in CSV and are skipped.
func CSV(elements []model.Element) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, el := range elements {
		if el.Kind != model.KindTable || el.Table == nil {
			continue
		}
		for _, row := range el.Table.Rows {
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
