package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zeonixpay/zeonix-dashboard/types"
)

// PayoutsPageData is a struct to hold info for the payouts page
type PayoutsPageData struct {
	FilterStatus string `json:"filter_status"`
	FilterMethod string `json:"filter_method"`
	FilterSearch string `json:"filter_search"`

	Payouts     []*PayoutsPageDataPayout `json:"payouts"`
	PayoutCount int                      `json:"payout_count"`
	TotalAmount *types.Totals            `json:"total_amount"`

	ListPaging
}

type PayoutsPageDataPayout struct {
	ID              int64           `json:"id"`
	TrxID           string          `json:"trx_id"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	ReceiverName    string          `json:"receiver_name"`
	ReceiverAccount string          `json:"receiver_account"`
	PayStatus       string          `json:"pay_status"`
	Reference       string          `json:"reference"`
	Time            time.Time       `json:"time"`
}
