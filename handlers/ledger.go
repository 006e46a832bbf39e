package handlers

import (
	"context"
	"net/http"

	"github.com/zeonixpay/zeonix-dashboard/listview"
	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

var ledgerFilterKeys = []string{"trx_type", "search"}

// Ledger will return the transaction ledger page using a template
func Ledger(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("ledger").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "ledger/ledger.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "transactions", "/ledger", "Ledger", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), ledgerFilterKeys)
	pageData, redirect, pageError := getLedgerPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "ledger.go", "Ledger", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getLedgerPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.LedgerPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))

	client := upstream.GlobalClient
	envelope, err := upstream.FetchList[types.LedgerEntry](ctx, client, session.Token, "/api/v1/merchant/ledger", filters.UpstreamQuery(client.DefaultPageSize()))
	if err != nil {
		return nil, "", err
	}

	pager.Observe(envelope.Count, len(envelope.Data), envelope.Next != nil, envelope.Previous != nil)
	if page, needed := pager.ClampRedirect(); needed {
		return nil, filters.PageURL("/ledger", page), nil
	}

	pageData := &models.LedgerPageData{
		FilterTrxType: filters.Get("trx_type"),
		FilterSearch:  filters.Get("search"),
		Entries:       make([]*models.LedgerPageDataEntry, 0, len(envelope.Data)),
		EntryCount:    envelope.Count,
	}
	for idx := range envelope.Data {
		entry := &envelope.Data[idx]
		pageData.Entries = append(pageData.Entries, &models.LedgerPageDataEntry{
			ID:            entry.ID,
			TrxID:         entry.TrxID,
			TrxType:       entry.TrxType,
			Amount:        entry.Amount,
			BalanceBefore: entry.BalanceBefore,
			BalanceAfter:  entry.BalanceAfter,
			Narration:     entry.Narration,
			Time:          entry.CreatedAt,
		})
	}
	pageData.ListPaging = buildListPaging(filters, pager, "/ledger")

	return pageData, "", nil
}
