package handlers

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/listview"
	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

func TestMain(m *testing.M) {
	cfg := &types.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "zeonix_session"
	cfg.Session.Lifetime = time.Hour
	cfg.Database.Engine = "sqlite"
	cfg.Database.Sqlite = &types.SqliteDatabaseConfig{File: ":memory:"}
	cfg.Upstream.MaxPageSize = 100
	utils.Config = cfg

	db.MustInitDB()
	if err := db.ApplyEmbeddedDbSchema(-2); err != nil {
		panic(err)
	}
	if err := services.StartSessionService(); err != nil {
		panic(err)
	}

	upstream.GlobalClient = upstream.NewClient("http://upstream.local", nil, 0, 10)
	os.Exit(m.Run())
}

func TestBuildListPaging(t *testing.T) {
	query := url.Values{}
	query.Set("pay_status", "pending")
	query.Set("page", "5")
	filters := listview.ParseFilters(query, []string{"pay_status"})

	pager := listview.NewPager(filters.Page, effectivePageSize(filters))
	pager.Observe(200, 10, true, true) // 20 pages at size 10

	paging := buildListPaging(filters, pager, "/deposits")

	if paging.TotalPages != 20 {
		t.Errorf("wrong total pages: got %v, want 20", paging.TotalPages)
	}
	if paging.CurrentPageIndex != 5 {
		t.Errorf("wrong current page: got %v, want 5", paging.CurrentPageIndex)
	}
	if paging.PrevPageIndex != 4 || paging.NextPageIndex != 6 {
		t.Errorf("wrong prev/next: got %v/%v", paging.PrevPageIndex, paging.NextPageIndex)
	}
	if paging.IsDefaultPage {
		t.Errorf("page 5 flagged as default page")
	}

	// filter state must survive in every page link
	for _, link := range []string{paging.FirstPageLink, paging.PrevPageLink, paging.NextPageLink, paging.LastPageLink} {
		parsed, err := url.Parse(link)
		if err != nil {
			t.Fatalf("invalid page link %q: %v", link, err)
		}
		if parsed.Query().Get("pay_status") != "pending" {
			t.Errorf("filter lost in page link %q", link)
		}
	}

	// window of 7 centered on page 5, with a trailing gap to page 20
	var windowPages []int
	hasTrailingGap := false
	sawLast := false
	for _, entry := range paging.PageWindow {
		if entry.Gap {
			hasTrailingGap = true
			continue
		}
		windowPages = append(windowPages, entry.Index)
		if entry.Index == 20 {
			sawLast = true
		}
		if entry.Active != (entry.Index == 5) {
			t.Errorf("wrong active flag on page %v", entry.Index)
		}
	}
	if !hasTrailingGap || !sawLast {
		t.Errorf("trailing gap affordance missing: pages %v", windowPages)
	}
}

func TestBuildListPagingSinglePage(t *testing.T) {
	filters := listview.ParseFilters(url.Values{}, nil)
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))
	pager.Observe(3, 3, false, false)

	paging := buildListPaging(filters, pager, "/ledger")

	if paging.TotalPages != 1 {
		t.Errorf("wrong total pages: got %v, want 1", paging.TotalPages)
	}
	if !paging.IsDefaultPage {
		t.Errorf("page 1 not flagged as default")
	}
	if len(paging.PageWindow) != 1 || paging.PageWindow[0].Index != 1 {
		t.Errorf("unexpected window: %+v", paging.PageWindow)
	}
}

func TestEffectivePageSize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"default when absent", "", 10},
		{"explicit size", "page_size=25", 25},
		{"clamped to max", "page_size=5000", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := url.ParseQuery(tt.query)
			filters := listview.ParseFilters(query, nil)
			if got := effectivePageSize(filters); got != tt.want {
				t.Errorf("effectivePageSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildListPagingLastPageLanding(t *testing.T) {
	// landing directly on the short last page of a 25 row set
	query := url.Values{}
	query.Set("page", "3")
	filters := listview.ParseFilters(query, nil)

	pager := listview.NewPager(filters.Page, effectivePageSize(filters))
	pager.Observe(25, 5, false, true)

	paging := buildListPaging(filters, pager, "/deposits")
	if paging.TotalPages != 3 {
		t.Errorf("wrong total pages: got %v, want 3", paging.TotalPages)
	}
	if _, needed := pager.ClampRedirect(); needed {
		t.Error("unexpected corrective navigation from the last page")
	}
}
