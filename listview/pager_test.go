package listview

import (
	"reflect"
	"testing"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		max      int
		expected []int
	}{
		{"empty set", 1, 0, 7, []int{}},
		{"single page", 1, 1, 7, []int{1}},
		{"total below max", 1, 3, 7, []int{1, 2, 3}},
		{"total equals max", 4, 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"centered", 10, 20, 7, []int{7, 8, 9, 10, 11, 12, 13}},
		{"clamped at start", 2, 20, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"clamped at end", 19, 20, 7, []int{14, 15, 16, 17, 18, 19, 20}},
		{"even window size", 10, 20, 6, []int{7, 8, 9, 10, 11, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ComputeWindow(tt.current, tt.total, tt.max)
			if !reflect.DeepEqual(window, tt.expected) {
				t.Errorf("ComputeWindow(%v, %v, %v) = %v, expected %v", tt.current, tt.total, tt.max, window, tt.expected)
			}
		})
	}
}

func TestComputeWindowLaws(t *testing.T) {
	max := 7
	for total := 1; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			window := ComputeWindow(current, total, max)

			expectedLen := max
			if total < max {
				expectedLen = total
			}
			if len(window) != expectedLen {
				t.Fatalf("window length for current=%v total=%v is %v, expected %v", current, total, len(window), expectedLen)
			}

			if total > max {
				found := false
				for _, page := range window {
					if page == current {
						found = true
					}
					if page < 1 || page > total {
						t.Fatalf("window for current=%v total=%v contains out-of-range page %v", current, total, page)
					}
				}
				if !found {
					t.Fatalf("window for current=%v total=%v does not contain current page: %v", current, total, window)
				}
			} else {
				for i, page := range window {
					if page != i+1 {
						t.Fatalf("window for total=%v is not [1..total]: %v", total, window)
					}
				}
			}
		}
	}
}

func TestBuildWindowGaps(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		total       int
		leadingGap  bool
		trailingGap bool
	}{
		{"all pages visible", 2, 5, false, false},
		{"gap on both sides", 10, 20, true, true},
		{"window touches first page", 2, 20, false, true},
		{"window touches last page", 19, 20, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := BuildWindow(tt.current, tt.total, 7)
			if window.LeadingGap != tt.leadingGap {
				t.Errorf("LeadingGap = %v, expected %v", window.LeadingGap, tt.leadingGap)
			}
			if window.TrailingGap != tt.trailingGap {
				t.Errorf("TrailingGap = %v, expected %v", window.TrailingGap, tt.trailingGap)
			}
		})
	}
}

func TestPagerGoToPage(t *testing.T) {
	pager := NewPager(1, 10)
	pager.Observe(25, 10, true, false)

	if pager.TotalPages() != 3 {
		t.Fatalf("TotalPages = %v, expected 3", pager.TotalPages())
	}

	page, changed := pager.GoToPage(2)
	if page != 2 || !changed {
		t.Errorf("GoToPage(2) = (%v, %v), expected (2, true)", page, changed)
	}

	// second call with the same target must not report another change
	page, changed = pager.GoToPage(2)
	if page != 2 || changed {
		t.Errorf("repeated GoToPage(2) = (%v, %v), expected (2, false)", page, changed)
	}

	// out-of-range targets clamp into [1, total]
	page, changed = pager.GoToPage(99)
	if page != 3 || !changed {
		t.Errorf("GoToPage(99) = (%v, %v), expected (3, true)", page, changed)
	}
	page, changed = pager.GoToPage(-4)
	if page != 1 || !changed {
		t.Errorf("GoToPage(-4) = (%v, %v), expected (1, true)", page, changed)
	}
}

func TestPagerPageSizeInference(t *testing.T) {
	pager := NewPager(1, 10)

	// a short only-page must not be mistaken for the page size
	pager.Observe(4, 4, false, false)
	if pager.PageSize() != 10 {
		t.Errorf("PageSize after short only-page = %v, expected requested 10", pager.PageSize())
	}

	// a page with a next cursor is full and sets the high-water mark
	pager.Observe(25, 10, true, false)
	if pager.PageSize() != 10 {
		t.Errorf("PageSize after full page = %v, expected 10", pager.PageSize())
	}

	// the mark is monotonically non-decreasing
	pager.Observe(25, 5, false, true)
	if pager.PageSize() != 10 {
		t.Errorf("PageSize after short last page = %v, expected 10", pager.PageSize())
	}
}

func TestPagerLastPageLanding(t *testing.T) {
	// landing directly on the short last page: without a next cursor the
	// observed length proves nothing, the requested size stays the divisor
	pager := NewPager(3, 10)
	pager.Observe(25, 5, false, true)

	if pager.PageSize() != 10 {
		t.Errorf("PageSize = %v, expected requested 10", pager.PageSize())
	}
	if pager.TotalPages() != 3 {
		t.Errorf("TotalPages = %v, expected 3", pager.TotalPages())
	}
	if _, needed := pager.ClampRedirect(); needed {
		t.Error("ClampRedirect reported a corrective navigation from the last page")
	}
}

func TestPagerClampRedirect(t *testing.T) {
	pager := NewPager(9, 10)
	pager.Observe(25, 0, false, true)

	page, needed := pager.ClampRedirect()
	if !needed || page != 3 {
		t.Errorf("ClampRedirect = (%v, %v), expected (3, true)", page, needed)
	}

	// after the corrective navigation no further redirect may be issued
	pager.Current = page
	if _, needed = pager.ClampRedirect(); needed {
		t.Error("ClampRedirect reported a second corrective navigation")
	}
}

func TestPagerEnvelopeScenario(t *testing.T) {
	// fetch {page:1, page_size:10} against a 25 row filtered set
	pager := NewPager(1, 10)
	pager.Observe(25, 10, true, false)

	if pager.Count != 25 {
		t.Errorf("Count = %v, expected 25", pager.Count)
	}
	if pager.TotalPages() != 3 {
		t.Errorf("TotalPages = %v, expected 3", pager.TotalPages())
	}
	window := ComputeWindow(1, 3, 7)
	if !reflect.DeepEqual(window, []int{1, 2, 3}) {
		t.Errorf("ComputeWindow(1, 3, 7) = %v, expected [1 2 3]", window)
	}
}
