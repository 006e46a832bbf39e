package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListEnvelope is the universal response shape of the upstream ZeonixPay API
// for collection endpoints. Status is the upstream-reported success flag and
// is independent of the HTTP status code. Next/Previous are non-nil iff
// another page exists in that direction.
type ListEnvelope[T any] struct {
	Status      bool    `json:"status"`
	Count       int     `json:"count"`
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
	Data        []T     `json:"data"`
	TotalAmount *Totals `json:"total_amount,omitempty"`
}

// Totals holds upstream-computed aggregates over the whole filtered result
// set, independent of the current page.
type Totals struct {
	Total    decimal.Decimal `json:"total"`
	Pending  decimal.Decimal `json:"pending"`
	Success  decimal.Decimal `json:"success"`
	Rejected decimal.Decimal `json:"rejected"`
	Deleted  decimal.Decimal `json:"deleted"`
}

type Deposit struct {
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
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Payout struct {
	ID              int64           `json:"id"`
	TrxID           string          `json:"trx_id"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	ReceiverName    string          `json:"receiver_name"`
	ReceiverAccount string          `json:"receiver_account"`
	PayStatus       string          `json:"pay_status"`
	Reference       string          `json:"reference"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type WithdrawRequest struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod int64           `json:"payment_method"`
	MethodType    string          `json:"method_type"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	Status        string          `json:"status"`
	RequestedBy   string          `json:"requested_by"`
	Remark        string          `json:"remark"`
	CreatedAt     time.Time       `json:"created_at"`
	ProcessedAt   *time.Time      `json:"processed_at"`
}

type LedgerEntry struct {
	ID            int64           `json:"id"`
	TrxID         string          `json:"trx_id"`
	TrxType       string          `json:"trx_type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Narration     string          `json:"narration"`
	CreatedAt     time.Time       `json:"created_at"`
}

type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

type Device struct {
	ID         int64      `json:"id"`
	DeviceName string     `json:"device_name"`
	DeviceKey  string     `json:"device_key"`
	Status     string     `json:"status"`
	AssignedTo string     `json:"assigned_to"`
	LastSeen   *time.Time `json:"last_seen"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Staff struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentMethodParams struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type PaymentMethod struct {
	ID         int64               `json:"id"`
	MethodType string              `json:"method_type"`
	Params     PaymentMethodParams `json:"params"`
	Status     string              `json:"status"`
	IsPrimary  bool                `json:"is_primary"`
	CreatedAt  time.Time           `json:"created_at"`
}

type ApiKey struct {
	ID        int64      `json:"id"`
	Label     string     `json:"label"`
	Key       string     `json:"key"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used"`
}

type Profile struct {
	ID         int64           `json:"id"`
	BrandName  string          `json:"brand_name"`
	BrandLogo  string          `json:"brand_logo"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	WebhookURL string          `json:"webhook_url"`
	Balance    decimal.Decimal `json:"balance"`
	ApiKeys    []*ApiKey       `json:"api_keys,omitempty"`
}

// LoginResult is the upstream auth response the session service stores.
type LoginResult struct {
	Status bool   `json:"status"`
	Token  string `json:"token"`
	Role   string `json:"role"`
}
