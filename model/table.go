package model

// Table is an ordered sequence of rows, each a sequence of cell strings.
// Every row's length equals Cols; short rows are padded with empty cells.
type Table struct {
	Rows [][]string
	Cols int
}

// NewTable builds a Table from rows, padding every row out to the widest
// row's length so the invariant "every row has length == Cols" holds even
// for ragged input.
func NewTable(rows [][]string) *Table {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	padded := make([][]string, len(rows))
	for i, row := range rows {
		p := make([]string, cols)
		copy(p, row)
		padded[i] = p
	}
	return &Table{Rows: padded, Cols: cols}
}
