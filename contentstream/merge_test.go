package contentstream

import (
	"testing"

	"github.com/tsawler/pdftext/model"
)

func TestMergeAdjacentGluesTightGap(t *testing.T) {
	// "Hel" is 3 chars at 12pt -> estimated width 18, ending at x=118.
	// "lo" starts at 120: gap 2 is under 0.8 widths (4.8), so no space.
	spans := []model.Span{
		{Text: "Hel", X: 100, Y: 700, FontSize: 12, FontName: "F1"},
		{Text: "lo", X: 120, Y: 700, FontSize: 12, FontName: "F1"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 1 {
		t.Fatalf("got %d spans, want 1", len(out))
	}
	if out[0].Text != "Hello" {
		t.Errorf("got %q, want %q", out[0].Text, "Hello")
	}
}

func TestMergeAdjacentInsertsSpaceForWordGap(t *testing.T) {
	// "Hello" ends at 100+5*6=130; "World" at 138 leaves a gap of 8, which
	// is between 0.8 and 2 estimated character widths (4.8 and 12).
	spans := []model.Span{
		{Text: "Hello", X: 100, Y: 700, FontSize: 12, FontName: "F1"},
		{Text: "World", X: 138, Y: 700, FontSize: 12, FontName: "F1"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 1 {
		t.Fatalf("got %d spans, want 1", len(out))
	}
	if out[0].Text != "Hello World" {
		t.Errorf("got %q, want %q", out[0].Text, "Hello World")
	}
}

func TestMergeAdjacentKeepsDistantSpansSeparate(t *testing.T) {
	spans := []model.Span{
		{Text: "Left", X: 72, Y: 700, FontSize: 12, FontName: "F1"},
		{Text: "Right", X: 300, Y: 700, FontSize: 12, FontName: "F1"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(out), out)
	}
}

func TestMergeAdjacentRespectsFontBoundary(t *testing.T) {
	spans := []model.Span{
		{Text: "Hel", X: 100, Y: 700, FontSize: 12, FontName: "F1"},
		{Text: "lo", X: 120, Y: 700, FontSize: 12, FontName: "F2"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(out), out)
	}
}

func TestMergeAdjacentLeavesSeparateLinesAlone(t *testing.T) {
	spans := []model.Span{
		{Text: "First", X: 50, Y: 500, FontSize: 10, FontName: "F1"},
		{Text: "Second", X: 50, Y: 480, FontSize: 10, FontName: "F1"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(out), out)
	}
	if out[0].Text != "First" || out[1].Text != "Second" {
		t.Errorf("got %+v", out)
	}
}

func TestMergeAdjacentSortsTopToBottom(t *testing.T) {
	spans := []model.Span{
		{Text: "lower", X: 50, Y: 100, FontSize: 10, FontName: "F1"},
		{Text: "upper", X: 50, Y: 400, FontSize: 10, FontName: "F1"},
	}
	out := MergeAdjacent(spans)
	if len(out) != 2 || out[0].Text != "upper" || out[1].Text != "lower" {
		t.Errorf("got %+v, want upper before lower", out)
	}
}
