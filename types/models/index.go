package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IndexPageData is a struct to hold info for the dashboard landing page
type IndexPageData struct {
	Balance      decimal.Decimal `json:"balance"`
	BrandName    string          `json:"brand_name"`
	DepositCount int             `json:"deposit_count"`
	PayoutCount  int             `json:"payout_count"`

	DepositTotals *IndexPageDataTotals `json:"deposit_totals"`
	PayoutTotals  *IndexPageDataTotals `json:"payout_totals"`

	RecentDeposits []*DepositsPageDataDeposit `json:"recent_deposits"`
	RecentPayouts  []*PayoutsPageDataPayout   `json:"recent_payouts"`

	ProfileFailed bool `json:"profile_failed"`
}

type IndexPageDataTotals struct {
	Total   decimal.Decimal `json:"total"`
	Pending decimal.Decimal `json:"pending"`
	Success decimal.Decimal `json:"success"`
}

// LoginPageData is a struct to hold info for the login page
type LoginPageData struct {
	Username     string `json:"username"`
	ErrorMessage string `json:"error_message"`
}

// UnavailablePageData is a struct to hold info for the upstream outage page
type UnavailablePageData struct {
	RetryURL string    `json:"retry_url"`
	Time     time.Time `json:"time"`
}
