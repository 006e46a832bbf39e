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

var payoutsFilterKeys = []string{"pay_status", "method", "search"}

// Payouts will return the payouts list page using a template
func Payouts(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("payouts").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "payouts/payouts.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "transactions", "/payouts", "Payouts", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), payoutsFilterKeys)
	pageData, redirect, pageError := getPayoutsPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "payouts.go", "Payouts", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getPayoutsPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.PayoutsPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))

	client := upstream.GlobalClient
	envelope, err := upstream.FetchList[types.Payout](ctx, client, session.Token, "/api/v1/merchant/payouts", filters.UpstreamQuery(client.DefaultPageSize()))
	if err != nil {
		return nil, "", err
	}

	pager.Observe(envelope.Count, len(envelope.Data), envelope.Next != nil, envelope.Previous != nil)
	if page, needed := pager.ClampRedirect(); needed {
		return nil, filters.PageURL("/payouts", page), nil
	}

	pageData := &models.PayoutsPageData{
		FilterStatus: filters.Get("pay_status"),
		FilterMethod: filters.Get("method"),
		FilterSearch: filters.Get("search"),
		Payouts:      make([]*models.PayoutsPageDataPayout, 0, len(envelope.Data)),
		PayoutCount:  envelope.Count,
		TotalAmount:  envelope.TotalAmount,
	}
	for idx := range envelope.Data {
		payout := &envelope.Data[idx]
		pageData.Payouts = append(pageData.Payouts, &models.PayoutsPageDataPayout{
			ID:              payout.ID,
			TrxID:           payout.TrxID,
			Method:          payout.Method,
			Amount:          payout.Amount,
			Fee:             payout.Fee,
			ReceiverName:    payout.ReceiverName,
			ReceiverAccount: payout.ReceiverAccount,
			PayStatus:       payout.PayStatus,
			Reference:       payout.Reference,
			Time:            payout.CreatedAt,
		})
	}
	pageData.ListPaging = buildListPaging(filters, pager, "/payouts")

	return pageData, "", nil
}
