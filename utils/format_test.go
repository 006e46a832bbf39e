package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"success", "positive"},
		{"Active", "positive"},
		{"PAID", "positive"},
		{"completed", "positive"},
		{"pending", "neutral"},
		{"Processing", "neutral"},
		{"failed", "negative"},
		{"rejected", "negative"},
		{"cancelled", "negative"},
		{"", "negative"},
		{"  Success  ", "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := StatusClass(tt.status); got != tt.expected {
				t.Errorf("StatusClass(%q) = %q, expected %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0.00"},
		{"100.5", "100.50"},
		{"1234.567", "1,234.57"},
		{"1000000", "1,000,000.00"},
		{"-54321.1", "-54,321.10"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatal(err)
			}
			if got := FormatAmount(amount); got != tt.expected {
				t.Errorf("FormatAmount(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		account  string
		expected string
	}{
		{"", ""},
		{"123", "***"},
		{"1234", "****"},
		{"01712345678", "*******5678"},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			if got := MaskAccountNumber(tt.account); got != tt.expected {
				t.Errorf("MaskAccountNumber(%q) = %q, expected %q", tt.account, got, tt.expected)
			}
		})
	}
}
