package pdftext

import "testing"

func TestPageIndicesDefaultsToAllPages(t *testing.T) {
	o := newExtractOptions(nil)
	got := o.pageIndices(3)
	want := []int{0, 1, 2}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWithPagesSelectsGivenPages(t *testing.T) {
	o := newExtractOptions([]Option{WithPages(2, 1)})
	got := o.pageIndices(3)
	want := []int{1, 0}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWithPagesDropsOutOfRange(t *testing.T) {
	o := newExtractOptions([]Option{WithPages(1, 99, 2)})
	got := o.pageIndices(2)
	want := []int{0, 1}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWithPageRangeInclusive(t *testing.T) {
	o := newExtractOptions([]Option{WithPageRange(2, 4)})
	got := o.pageIndices(5)
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWithPageRangeSwapsReversedBounds(t *testing.T) {
	o := newExtractOptions([]Option{WithPageRange(4, 2)})
	got := o.pageIndices(5)
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
