package pdftext

// extractOptions holds the configuration built up by a chain of Option
// values.
type extractOptions struct {
	pages []int // 1-indexed page numbers; nil means every page
}

// Option configures a top-level extraction call.
type Option func(*extractOptions)

// WithPages restricts extraction to the given 1-indexed page numbers, in
// the order given.
func WithPages(pageNumbers ...int) Option {
	return func(o *extractOptions) {
		o.pages = append([]int(nil), pageNumbers...)
	}
}

// WithPageRange restricts extraction to the 1-indexed, inclusive page
// range [start, end].
func WithPageRange(start, end int) Option {
	return func(o *extractOptions) {
		if end < start {
			start, end = end, start
		}
		pages := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
		o.pages = pages
	}
}

func newExtractOptions(opts []Option) extractOptions {
	var o extractOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// pageIndices resolves the configured page selection to 0-indexed page
// indices, defaulting to every page in order when none was configured.
func (o extractOptions) pageIndices(pageCount int) []int {
	if o.pages == nil {
		indices := make([]int, pageCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	var indices []int
	for _, n := range o.pages {
		if n >= 1 && n <= pageCount {
			indices = append(indices, n-1)
		}
	}
	return indices
}
