package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerPageData is a struct to hold info for the transaction ledger page
type LedgerPageData struct {
	FilterTrxType string `json:"filter_trx_type"`
	FilterSearch  string `json:"filter_search"`

	Entries    []*LedgerPageDataEntry `json:"entries"`
	EntryCount int                    `json:"entry_count"`

	ListPaging
}

type LedgerPageDataEntry struct {
	ID            int64           `json:"id"`
	TrxID         string          `json:"trx_id"`
	TrxType       string          `json:"trx_type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Narration     string          `json:"narration"`
	Time          time.Time       `json:"time"`
}
