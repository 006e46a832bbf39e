package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

// Index will return the dashboard overview page using a template
func Index(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("index").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "index/index.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "index", "/", "Overview", templateFiles)

	pageData, pageError := getIndexPageData(r.Context(), session)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "index.go", "Index", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

// getIndexPageData builds the overview from the first page of deposits and
// payouts plus the merchant profile. The profile is optional here, so a
// profile failure only hides the balance card.
func getIndexPageData(ctx context.Context, session *types.Session) (*models.IndexPageData, error) {
	client := upstream.GlobalClient
	pageData := &models.IndexPageData{}

	recentQuery := url.Values{}
	recentQuery.Set("page", "1")
	recentQuery.Set("page_size", "5")

	depositsEnvelope, err := upstream.FetchList[types.Deposit](ctx, client, session.Token, "/api/v1/merchant/deposits", recentQuery)
	if err != nil {
		return nil, err
	}
	pageData.DepositCount = depositsEnvelope.Count
	if totals := depositsEnvelope.TotalAmount; totals != nil {
		pageData.DepositTotals = &models.IndexPageDataTotals{
			Total:   totals.Total,
			Pending: totals.Pending,
			Success: totals.Success,
		}
	}
	for idx := range depositsEnvelope.Data {
		deposit := &depositsEnvelope.Data[idx]
		pageData.RecentDeposits = append(pageData.RecentDeposits, &models.DepositsPageDataDeposit{
			ID:        deposit.ID,
			TrxID:     deposit.TrxID,
			Method:    deposit.Method,
			Amount:    deposit.Amount,
			PayStatus: deposit.PayStatus,
			Time:      deposit.CreatedAt,
		})
	}

	payoutsEnvelope, err := upstream.FetchList[types.Payout](ctx, client, session.Token, "/api/v1/merchant/payouts", recentQuery)
	if err != nil {
		return nil, err
	}
	pageData.PayoutCount = payoutsEnvelope.Count
	if totals := payoutsEnvelope.TotalAmount; totals != nil {
		pageData.PayoutTotals = &models.IndexPageDataTotals{
			Total:   totals.Total,
			Pending: totals.Pending,
			Success: totals.Success,
		}
	}
	for idx := range payoutsEnvelope.Data {
		payout := &payoutsEnvelope.Data[idx]
		pageData.RecentPayouts = append(pageData.RecentPayouts, &models.PayoutsPageDataPayout{
			ID:        payout.ID,
			TrxID:     payout.TrxID,
			Method:    payout.Method,
			Amount:    payout.Amount,
			PayStatus: payout.PayStatus,
			Time:      payout.CreatedAt,
		})
	}

	profile := &types.Profile{}
	if err := client.GetJSON(ctx, session.Token, "/api/v1/merchant/profile", nil, profile); err != nil {
		pageData.ProfileFailed = true
	} else {
		pageData.Balance = profile.Balance
		pageData.BrandName = profile.BrandName
	}

	return pageData, nil
}
