package handlers

import (
	"github.com/zeonixpay/zeonix-dashboard/listview"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

// effectivePageSize resolves the page size actually sent upstream: the
// requested size clamped to the upstream maximum, or the configured default
// when the request carries none. The pager needs the same number, otherwise
// total pages are computed against the wrong divisor.
func effectivePageSize(filters *listview.Filters) int {
	if filters.PageSize > upstream.MaxPageSize() {
		filters.PageSize = upstream.MaxPageSize()
	}
	if filters.PageSize > 0 {
		return filters.PageSize
	}
	return upstream.GlobalClient.DefaultPageSize()
}

// buildListPaging converts pager state into the renderable paging block.
// Leading and trailing gaps keep the first and last page reachable from
// the window.
func buildListPaging(filters *listview.Filters, pager *listview.Pager, path string) models.ListPaging {
	totalPages := pager.TotalPages()
	current := pager.Current

	prevPage := current - 1
	if prevPage < 1 {
		prevPage = 1
	}
	nextPage := current + 1
	if nextPage > totalPages {
		nextPage = totalPages
	}

	paging := models.ListPaging{
		IsDefaultPage:    current == 1,
		TotalPages:       totalPages,
		PageSize:         pager.PageSize(),
		CurrentPageIndex: current,
		PrevPageIndex:    prevPage,
		NextPageIndex:    nextPage,
		LastPageIndex:    totalPages,
		FirstPageLink:    filters.PageURL(path, 1),
		PrevPageLink:     filters.PageURL(path, prevPage),
		NextPageLink:     filters.PageURL(path, nextPage),
		LastPageLink:     filters.PageURL(path, totalPages),
	}

	window := pager.Window()
	if window.LeadingGap {
		paging.PageWindow = append(paging.PageWindow,
			&models.ListPagingPage{Index: 1, Link: filters.PageURL(path, 1)},
			&models.ListPagingPage{Gap: true},
		)
	}
	for _, page := range window.Pages {
		paging.PageWindow = append(paging.PageWindow, &models.ListPagingPage{
			Index:  page,
			Link:   filters.PageURL(path, page),
			Active: page == current,
		})
	}
	if window.TrailingGap {
		paging.PageWindow = append(paging.PageWindow,
			&models.ListPagingPage{Gap: true},
			&models.ListPagingPage{Index: totalPages, Link: filters.PageURL(path, totalPages)},
		)
	}

	return paging
}
