package listview

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// AllSentinel is the value used by select inputs to unset a filter key.
// Select inputs cannot carry an empty string, since an empty string is
// indistinguishable from "unset" in a URL query.
const AllSentinel = "all"

// Filters holds the sparse filter state of one list view. Only present,
// non-empty keys are kept; an omitted key is never sent upstream.
type Filters struct {
	Page     int
	PageSize int

	keys   []string
	values map[string]string
}

// ParseFilters decodes the recognized filter keys from the request query.
// Empty values and the "all" sentinel are treated as unset. Page defaults
// to 1, page size to 0 (the fetcher applies its configured default).
func ParseFilters(query url.Values, keys []string) *Filters {
	f := &Filters{
		Page:   1,
		keys:   keys,
		values: map[string]string{},
	}

	for _, key := range keys {
		val := query.Get(key)
		if val == "" || val == AllSentinel {
			continue
		}
		f.values[key] = val
	}

	if query.Has("page") {
		page, err := strconv.Atoi(query.Get("page"))
		if err == nil && page >= 1 {
			f.Page = page
		}
	}
	if query.Has("page_size") {
		size, err := strconv.Atoi(query.Get("page_size"))
		if err == nil && size >= 1 {
			f.PageSize = size
		}
	}

	return f
}

func (f *Filters) Get(key string) string {
	return f.values[key]
}

func (f *Filters) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Set changes one filter key and resets the page back to 1. An empty value
// or the "all" sentinel deletes the key.
func (f *Filters) Set(key, value string) {
	if value == "" || value == AllSentinel {
		delete(f.values, key)
	} else {
		f.values[key] = value
	}
	f.Page = 1
}

// Query encodes the present filter keys plus page/page_size back into URL
// values. Defaults (page 1, unset page size) are omitted so encoded URLs
// stay minimal and round-trip cleanly.
func (f *Filters) Query() url.Values {
	query := url.Values{}
	for key, val := range f.values {
		query.Set(key, val)
	}
	if f.Page > 1 {
		query.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(f.PageSize))
	}
	return query
}

// UpstreamQuery encodes the filters for the upstream API call: present keys
// plus an explicit page and page_size.
func (f *Filters) UpstreamQuery(defaultPageSize int) url.Values {
	query := f.Query()
	query.Set("page", strconv.Itoa(f.Page))
	if f.PageSize <= 0 {
		query.Set("page_size", strconv.Itoa(defaultPageSize))
	}
	return query
}

// PageURL builds the canonical URL of the list view for the given page.
func (f *Filters) PageURL(path string, page int) string {
	query := f.Query()
	query.Del("page")
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	if len(query) == 0 {
		return path
	}
	return fmt.Sprintf("%v?%v", path, query.Encode())
}

// Keys returns the present filter keys in stable order.
func (f *Filters) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for key := range f.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
