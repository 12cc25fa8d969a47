// Command pdftext extracts text, Markdown, CSV, or TSV from a PDF file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/pdftext"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pdftext: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	var (
		asText     = flag.Bool("text", false, "render as plain text (the default)")
		asTxt      = flag.Bool("txt", false, "alias for -text")
		asMarkdown = flag.Bool("md", false, "render as Markdown")
		asCSV      = flag.Bool("csv", false, "render detected tables as CSV")
		asTSV      = flag.Bool("tsv", false, "render detected tables as TSV")
		asRaw      = flag.Bool("raw", false, "dump positioned spans without layout reconstruction")
		page       = flag.Int("page", 0, "extract a single 1-indexed page (0 means all pages)")
		outPath    = flag.String("o", "", "output file path (default stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <pdf-file>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if countSet(*asText, *asTxt, *asMarkdown, *asCSV, *asTSV, *asRaw) > 1 {
		fmt.Fprintln(os.Stderr, "pdftext: -text, -txt, -md, -csv, -tsv, and -raw are mutually exclusive")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdftext: %v\n", err)
		os.Exit(1)
	}

	var opts []pdftext.Option
	if *page > 0 {
		doc, err := pdftext.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pdftext: %v\n", err)
			os.Exit(1)
		}
		if *page > doc.PageCount() {
			fmt.Fprintf(os.Stderr, "pdftext: page %d out of range (document has %d pages)\n", *page, doc.PageCount())
			os.Exit(1)
		}
		opts = append(opts, pdftext.WithPages(*page))
	}

	var out string
	switch {
	case *asMarkdown:
		out, err = pdftext.ToMarkdown(data, opts...)
	case *asCSV:
		out, err = pdftext.ToCSV(data, opts...)
	case *asTSV:
		out, err = pdftext.ToTSV(data, opts...)
	case *asRaw:
		out, err = rawSpans(data, *page)
	default:
		out, err = pdftext.ToText(data, opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdftext: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(*outPath, []byte(out), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "pdftext: %v\n", err)
		os.Exit(1)
	}
}

// rawSpans dumps each selected page's positioned spans one per line,
// bypassing layout reconstruction entirely.
func rawSpans(data []byte, page int) (string, error) {
	doc, err := pdftext.Parse(data)
	if err != nil {
		return "", err
	}

	first, last := 0, doc.PageCount()
	if page > 0 {
		if page > doc.PageCount() {
			return "", fmt.Errorf("page %d out of range (document has %d pages)", page, doc.PageCount())
		}
		first, last = page-1, page
	}

	var sb strings.Builder
	for i := first; i < last; i++ {
		spans, err := doc.ExtractPageSpans(i)
		if err != nil {
			return "", err
		}
		for _, s := range spans {
			fmt.Fprintf(&sb, "%.2f\t%.2f\t%.2f\t%s\n", s.X, s.Y, s.FontSize, s.Text)
		}
	}
	return sb.String(), nil
}

func countSet(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
