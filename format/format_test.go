package format

import (
	"strings"
	"testing"

	"github.com/tsawler/pdftext/model"
)

func sampleElements() []model.Element {
	return []model.Element{
		{Kind: model.KindHeading, Level: 1, Text: "Title"},
		{Kind: model.KindParagraph, Text: "Some body text."},
		{Kind: model.KindTable, Table: model.NewTable([][]string{
			{"Name", "Age"},
			{"Alice", "30"},
		})},
	}
}

func TestTextRendersHeadingsAndParagraphs(t *testing.T) {
	out := Text(sampleElements())
	if !strings.Contains(out, "Title\n\n") {
		t.Errorf("expected heading block, got %q", out)
	}
	if !strings.Contains(out, "Some body text.") {
		t.Errorf("expected paragraph text, got %q", out)
	}
}

func TestMarkdownRendersHeadingLevel(t *testing.T) {
	out := Markdown(sampleElements())
	if !strings.Contains(out, "# Title") {
		t.Errorf("expected '# Title', got %q", out)
	}
	if !strings.Contains(out, "| ----- | --- |") {
		t.Errorf("expected separator row padded to column widths, got %q", out)
	}
	if !strings.Contains(out, "| Name  | Age |") {
		t.Errorf("expected cells padded to column widths, got %q", out)
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	els := []model.Element{{Kind: model.KindTable, Table: model.NewTable([][]string{{"a|b"}})}}
	out := Markdown(els)
	if !strings.Contains(out, "a\\|b") {
		t.Errorf("expected escaped pipe, got %q", out)
	}
}

func TestCSVRendersTable(t *testing.T) {
	out, err := CSV(sampleElements())
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if !strings.Contains(out, "Name,Age") || !strings.Contains(out, "Alice,30") {
		t.Errorf("got %q", out)
	}
}

func TestCSVQuotesSpecialChars(t *testing.T) {
	els := []model.Element{{Kind: model.KindTable, Table: model.NewTable([][]string{{"a,b", "c\"d"}})}}
	out, err := CSV(els)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if !strings.Contains(out, `"a,b"`) || !strings.Contains(out, `"c""d"`) {
		t.Errorf("got %q", out)
	}
}

func TestTSVReplacesTabs(t *testing.T) {
	els := []model.Element{{Kind: model.KindTable, Table: model.NewTable([][]string{{"a\tb", "c"}})}}
	out := TSV(els)
	if strings.Contains(out[:len(out)-1], "\t\t") {
		t.Errorf("literal tab in cell wasn't replaced: %q", out)
	}
	if !strings.HasPrefix(out, "a b\tc\n") {
		t.Errorf("got %q", out)
	}
}
