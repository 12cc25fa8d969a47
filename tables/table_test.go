package tables

import (
	"testing"

	"github.com/tsawler/pdftext/model"
)

func TestBuildAssignsColumns(t *testing.T) {
	rows := [][]model.Span{
		{{Text: "Name", X: 10}, {Text: "Age", X: 100}, {Text: "City", X: 200}},
		{{Text: "Alice", X: 11}, {Text: "30", X: 99}, {Text: "NYC", X: 202}},
	}
	tbl := Build(rows)
	if tbl.Cols != 3 {
		t.Fatalf("expected 3 columns, got %d", tbl.Cols)
	}
	if tbl.Rows[0][0] != "Name" || tbl.Rows[1][0] != "Alice" {
		t.Errorf("got rows %+v", tbl.Rows)
	}
	if tbl.Rows[1][1] != "30" {
		t.Errorf("expected '30' in column 1, got %q", tbl.Rows[1][1])
	}
}

func TestBuildMergesSameColumnSpans(t *testing.T) {
	rows := [][]model.Span{
		{{Text: "Hello", X: 10}, {Text: "World", X: 15}, {Text: "Far", X: 200}},
	}
	tbl := Build(rows)
	if tbl.Cols != 2 {
		t.Fatalf("expected 2 columns, got %d", tbl.Cols)
	}
	if tbl.Rows[0][0] != "Hello World" {
		t.Errorf("expected merged cell, got %q", tbl.Rows[0][0])
	}
}

func TestBuildMissingCellsAreEmpty(t *testing.T) {
	rows := [][]model.Span{
		{{Text: "A", X: 10}, {Text: "B", X: 100}},
		{{Text: "C", X: 10}},
	}
	tbl := Build(rows)
	if tbl.Rows[1][1] != "" {
		t.Errorf("expected empty cell, got %q", tbl.Rows[1][1])
	}
}
