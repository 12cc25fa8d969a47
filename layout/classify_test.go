package layout

import (
	"testing"

	"github.com/tsawler/pdftext/model"
)

func TestClassifyHeading(t *testing.T) {
	l := Line{FontSize: 24, Spans: []model.Span{{X: 10}}}
	class, level := Classify(l, 12)
	if class != ClassHeading || level != 1 {
		t.Errorf("got class=%v level=%v, want heading level 1", class, level)
	}
}

func TestClassifyParagraph(t *testing.T) {
	l := Line{FontSize: 12, Spans: []model.Span{{X: 10}}}
	class, _ := Classify(l, 12)
	if class != ClassParagraph {
		t.Errorf("got class=%v, want paragraph", class)
	}
}

func TestClassifyTableRow(t *testing.T) {
	l := Line{FontSize: 12, Spans: []model.Span{{X: 10}, {X: 100}, {X: 200}}}
	class, _ := Classify(l, 12)
	if class != ClassTableRow {
		t.Errorf("got class=%v, want table row", class)
	}
}
