package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfilePageData is a struct to hold info for the merchant profile page
type ProfilePageData struct {
	ID         int64           `json:"id"`
	BrandName  string          `json:"brand_name"`
	BrandLogo  string          `json:"brand_logo"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	WebhookURL string          `json:"webhook_url"`
	Balance    decimal.Decimal `json:"balance"`

	PaymentMethods []*ProfilePageDataPaymentMethod `json:"payment_methods"`
	ApiKeys        []*ProfilePageDataApiKey        `json:"api_keys"`
}

type ProfilePageDataPaymentMethod struct {
	ID            int64     `json:"id"`
	MethodType    string    `json:"method_type"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	Status        string    `json:"status"`
	IsPrimary     bool      `json:"is_primary"`
	Time          time.Time `json:"time"`
}

type ProfilePageDataApiKey struct {
	ID       int64      `json:"id"`
	Label    string     `json:"label"`
	Key      string     `json:"key"`
	LastUsed *time.Time `json:"last_used"`
	Time     time.Time  `json:"time"`
}
