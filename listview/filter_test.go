package listview

import (
	"net/url"
	"testing"
)

var testFilterKeys = []string{"method", "pay_status", "search", "created_at_after", "created_at_before"}

func TestParseFilters(t *testing.T) {
	query := url.Values{}
	query.Set("method", "bkash")
	query.Set("pay_status", "pending")
	query.Set("search", "TRX123")
	query.Set("page", "3")
	query.Set("page_size", "25")
	query.Set("unrecognized", "x")

	filters := ParseFilters(query, testFilterKeys)

	if filters.Page != 3 {
		t.Errorf("Page = %v, expected 3", filters.Page)
	}
	if filters.PageSize != 25 {
		t.Errorf("PageSize = %v, expected 25", filters.PageSize)
	}
	if filters.Get("method") != "bkash" || filters.Get("pay_status") != "pending" || filters.Get("search") != "TRX123" {
		t.Errorf("unexpected filter values: %v", filters.Keys())
	}
	if filters.Has("unrecognized") {
		t.Error("unrecognized key must not be parsed")
	}
}

func TestParseFiltersUnsetValues(t *testing.T) {
	query := url.Values{}
	query.Set("method", "")
	query.Set("pay_status", AllSentinel)

	filters := ParseFilters(query, testFilterKeys)

	if filters.Has("method") {
		t.Error("empty value must stay absent")
	}
	if filters.Has("pay_status") {
		t.Error("the all sentinel must never appear in the decoded filter object")
	}
}

func TestFiltersRoundTrip(t *testing.T) {
	query := url.Values{}
	query.Set("method", "nagad")
	query.Set("created_at_after", "2025-01-01")
	query.Set("page", "2")

	filters := ParseFilters(query, testFilterKeys)
	decoded := ParseFilters(filters.Query(), testFilterKeys)

	if decoded.Page != filters.Page || decoded.PageSize != filters.PageSize {
		t.Errorf("pagination did not round-trip: got page=%v size=%v", decoded.Page, decoded.PageSize)
	}
	for _, key := range testFilterKeys {
		if decoded.Get(key) != filters.Get(key) {
			t.Errorf("key %v did not round-trip: %q != %q", key, decoded.Get(key), filters.Get(key))
		}
	}
	if decoded.Has("search") {
		t.Error("absent key appeared after round-trip")
	}
}

func TestFiltersSetResetsPage(t *testing.T) {
	query := url.Values{}
	query.Set("method", "rocket")
	query.Set("page", "5")

	filters := ParseFilters(query, testFilterKeys)
	filters.Set("pay_status", "success")

	if filters.Page != 1 {
		t.Errorf("Page = %v, expected reset to 1 after filter change", filters.Page)
	}

	filters.Page = 4
	filters.Set("method", AllSentinel)
	if filters.Has("method") {
		t.Error("setting the all sentinel must delete the key")
	}
	if filters.Page != 1 {
		t.Errorf("Page = %v, expected reset to 1 after filter unset", filters.Page)
	}
}

func TestFiltersUpstreamQuery(t *testing.T) {
	query := url.Values{}
	query.Set("search", "TRX900")
	filters := ParseFilters(query, testFilterKeys)

	upstream := filters.UpstreamQuery(10)
	if upstream.Get("page") != "1" {
		t.Errorf("upstream page = %q, expected explicit 1", upstream.Get("page"))
	}
	if upstream.Get("page_size") != "10" {
		t.Errorf("upstream page_size = %q, expected default 10", upstream.Get("page_size"))
	}
	if upstream.Get("search") != "TRX900" {
		t.Errorf("upstream search = %q", upstream.Get("search"))
	}
	if upstream.Has("method") {
		t.Error("absent filter must not be sent upstream")
	}
}

func TestFiltersPageURL(t *testing.T) {
	query := url.Values{}
	query.Set("method", "bkash")
	filters := ParseFilters(query, testFilterKeys)

	if got := filters.PageURL("/deposits", 1); got != "/deposits?method=bkash" {
		t.Errorf("PageURL page 1 = %q", got)
	}
	if got := filters.PageURL("/deposits", 3); got != "/deposits?method=bkash&page=3" {
		t.Errorf("PageURL page 3 = %q", got)
	}

	empty := ParseFilters(url.Values{}, testFilterKeys)
	if got := empty.PageURL("/deposits", 1); got != "/deposits" {
		t.Errorf("PageURL without filters = %q", got)
	}
}
