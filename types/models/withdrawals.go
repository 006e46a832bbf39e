package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalsPageData is a struct to hold info for the withdraw requests page
type WithdrawalsPageData struct {
	FilterStatus string `json:"filter_status"`

	Withdrawals     []*WithdrawalsPageDataWithdrawal `json:"withdrawals"`
	WithdrawalCount int                              `json:"withdrawal_count"`

	PaymentMethods []*ProfilePageDataPaymentMethod `json:"payment_methods"`

	ListPaging
}

type WithdrawalsPageDataWithdrawal struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	MethodType    string          `json:"method_type"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	Status        string          `json:"status"`
	RequestedBy   string          `json:"requested_by"`
	Remark        string          `json:"remark"`
	Time          time.Time       `json:"time"`
	ProcessedAt   *time.Time      `json:"processed_at"`
}
