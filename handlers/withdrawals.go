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

var withdrawalsFilterKeys = []string{"status"}

// Withdrawals will return the withdraw requests page using a template
func Withdrawals(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("withdrawals").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "withdrawals/withdrawals.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "withdrawals", "/withdrawals", "Withdrawals", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), withdrawalsFilterKeys)
	pageData, redirect, pageError := getWithdrawalsPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "withdrawals.go", "Withdrawals", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getWithdrawalsPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.WithdrawalsPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))

	client := upstream.GlobalClient
	envelope, err := upstream.FetchList[types.WithdrawRequest](ctx, client, session.Token, "/api/v1/merchant/withdraw-requests", filters.UpstreamQuery(client.DefaultPageSize()))
	if err != nil {
		return nil, "", err
	}

	pager.Observe(envelope.Count, len(envelope.Data), envelope.Next != nil, envelope.Previous != nil)
	if page, needed := pager.ClampRedirect(); needed {
		return nil, filters.PageURL("/withdrawals", page), nil
	}

	pageData := &models.WithdrawalsPageData{
		FilterStatus:    filters.Get("status"),
		Withdrawals:     make([]*models.WithdrawalsPageDataWithdrawal, 0, len(envelope.Data)),
		WithdrawalCount: envelope.Count,
	}
	for idx := range envelope.Data {
		withdrawal := &envelope.Data[idx]
		pageData.Withdrawals = append(pageData.Withdrawals, &models.WithdrawalsPageDataWithdrawal{
			ID:            withdrawal.ID,
			Amount:        withdrawal.Amount,
			MethodType:    withdrawal.MethodType,
			AccountName:   withdrawal.AccountName,
			AccountNumber: withdrawal.AccountNumber,
			Status:        withdrawal.Status,
			RequestedBy:   withdrawal.RequestedBy,
			Remark:        withdrawal.Remark,
			Time:          withdrawal.CreatedAt,
			ProcessedAt:   withdrawal.ProcessedAt,
		})
	}
	pageData.ListPaging = buildListPaging(filters, pager, "/withdrawals")

	// payment methods feed the new-request form; an outage here is as
	// fatal as one on the list fetch
	methods, err := getProfilePaymentMethods(ctx, session)
	if err != nil {
		if upstream.IsOutage(err) || err == upstream.ErrNoToken {
			return nil, "", err
		}
	} else {
		pageData.PaymentMethods = methods
	}

	return pageData, "", nil
}
