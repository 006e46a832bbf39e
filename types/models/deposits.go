package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zeonixpay/zeonix-dashboard/types"
)

// DepositsPageData is a struct to hold info for the deposits page
type DepositsPageData struct {
	FilterStatus string `json:"filter_status"`
	FilterMethod string `json:"filter_method"`
	FilterSearch string `json:"filter_search"`

	Deposits     []*DepositsPageDataDeposit `json:"deposits"`
	DepositCount int                        `json:"deposit_count"`
	TotalAmount  *types.Totals              `json:"total_amount"`

	ListPaging
}

type DepositsPageDataDeposit struct {
	ID            int64           `json:"id"`
	TrxID         string          `json:"trx_id"`
	OrderID       string          `json:"order_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	PayStatus     string          `json:"pay_status"`
	PayerName     string          `json:"payer_name"`
	PayerAccount  string          `json:"payer_account"`
	CallbackState string          `json:"callback_state"`
	Time          time.Time       `json:"time"`
}
