package listview

// DefaultWindowSize is the number of page buttons rendered by default.
const DefaultWindowSize = 7

// ComputeWindow returns the contiguous page numbers to render as clickable
// controls. For total <= max the full range [1..total] is returned, otherwise
// a window of size max centered on current and clamped into [1, total].
func ComputeWindow(current, total, max int) []int {
	if total < 1 {
		return []int{}
	}
	if max < 1 {
		max = DefaultWindowSize
	}

	if total <= max {
		window := make([]int, total)
		for i := range window {
			window[i] = i + 1
		}
		return window
	}

	first := current - max/2
	if first < 1 {
		first = 1
	}
	if first+max-1 > total {
		first = total - max + 1
	}

	window := make([]int, max)
	for i := range window {
		window[i] = first + i
	}
	return window
}

// Window is the renderable pagination control state. LeadingGap/TrailingGap
// tell the template to render the "1 …" / "… N" affordances.
type Window struct {
	Pages       []int
	LeadingGap  bool
	TrailingGap bool
}

// BuildWindow wraps ComputeWindow with the gap affordances.
func BuildWindow(current, total, max int) *Window {
	pages := ComputeWindow(current, total, max)
	w := &Window{Pages: pages}
	if len(pages) > 0 {
		w.LeadingGap = pages[0] != 1
		w.TrailingGap = pages[len(pages)-1] != total
	}
	return w
}

// Pager derives pagination state from the upstream list envelope. The
// upstream contract does not echo an explicit page size and conflates "last
// page" with "short page", so the effective page size is inferred as a
// monotonically non-decreasing high-water mark over observed page lengths,
// counting a page as full only when a next cursor proves it is not the last.
type Pager struct {
	Current           int
	Count             int
	RequestedPageSize int

	sizeHighWater int
}

func NewPager(current, requestedPageSize int) *Pager {
	if current < 1 {
		current = 1
	}
	return &Pager{
		Current:           current,
		RequestedPageSize: requestedPageSize,
	}
}

// Observe feeds one rendered page into the pager: the total row count, the
// number of rows on this page and the presence of the next/previous cursors.
func (p *Pager) Observe(count, dataLen int, hasNext, hasPrev bool) {
	if count >= 0 {
		p.Count = count
	}
	if dataLen > 0 && hasNext && dataLen > p.sizeHighWater {
		// only a page with a next cursor is provably full, the last page
		// may legitimately be shorter
		p.sizeHighWater = dataLen
	}
}

// PageSize returns the effective page size: the observed high-water mark,
// falling back to the requested size.
func (p *Pager) PageSize() int {
	if p.sizeHighWater > 0 {
		return p.sizeHighWater
	}
	if p.RequestedPageSize > 0 {
		return p.RequestedPageSize
	}
	return 1
}

// TotalPages returns the page count for the current filtered set, never
// less than 1.
func (p *Pager) TotalPages() int {
	size := p.PageSize()
	pages := p.Count / size
	if p.Count%size > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GoToPage clamps target into [1, TotalPages] and moves the pager there.
// It reports whether the displayed page actually changed, so callers can
// skip redundant URL mutations.
func (p *Pager) GoToPage(target int) (int, bool) {
	if target < 1 {
		target = 1
	}
	if total := p.TotalPages(); target > total {
		target = total
	}
	if target == p.Current {
		return p.Current, false
	}
	p.Current = target
	return p.Current, true
}

// ClampRedirect reports whether the current page ran past the end of the
// result set (e.g. after a filter change shrank it) and the page to
// silently navigate back to.
func (p *Pager) ClampRedirect() (int, bool) {
	total := p.TotalPages()
	if p.Current > total {
		return total, true
	}
	return p.Current, false
}

// Window returns the renderable page window centered on the current page.
func (p *Pager) Window() *Window {
	return BuildWindow(p.Current, p.TotalPages(), DefaultWindowSize)
}
