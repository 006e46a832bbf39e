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

var depositsFilterKeys = []string{"pay_status", "method", "search"}

// Deposits will return the deposits list page using a template
func Deposits(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("deposits").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "deposits/deposits.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "transactions", "/deposits", "Deposits", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), depositsFilterKeys)
	pageData, redirect, pageError := getDepositsPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "deposits.go", "Deposits", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getDepositsPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.DepositsPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))

	client := upstream.GlobalClient
	envelope, err := upstream.FetchList[types.Deposit](ctx, client, session.Token, "/api/v1/merchant/deposits", filters.UpstreamQuery(client.DefaultPageSize()))
	if err != nil {
		return nil, "", err
	}

	pager.Observe(envelope.Count, len(envelope.Data), envelope.Next != nil, envelope.Previous != nil)
	if page, needed := pager.ClampRedirect(); needed {
		return nil, filters.PageURL("/deposits", page), nil
	}

	pageData := &models.DepositsPageData{
		FilterStatus: filters.Get("pay_status"),
		FilterMethod: filters.Get("method"),
		FilterSearch: filters.Get("search"),
		Deposits:     make([]*models.DepositsPageDataDeposit, 0, len(envelope.Data)),
		DepositCount: envelope.Count,
		TotalAmount:  envelope.TotalAmount,
	}
	for idx := range envelope.Data {
		deposit := &envelope.Data[idx]
		pageData.Deposits = append(pageData.Deposits, &models.DepositsPageDataDeposit{
			ID:            deposit.ID,
			TrxID:         deposit.TrxID,
			OrderID:       deposit.OrderID,
			Method:        deposit.Method,
			Amount:        deposit.Amount,
			Fee:           deposit.Fee,
			NetAmount:     deposit.NetAmount,
			PayStatus:     deposit.PayStatus,
			PayerName:     deposit.PayerName,
			PayerAccount:  deposit.PayerAccount,
			CallbackState: deposit.CallbackState,
			Time:          deposit.CreatedAt,
		})
	}
	pageData.ListPaging = buildListPaging(filters, pager, "/deposits")

	return pageData, "", nil
}
