package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusClass maps a raw upstream status string to one of three visual
// severities used by the table templates: "positive", "neutral", "negative".
// Matching is case-insensitive; anything unknown counts as negative.
func StatusClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "active", "paid", "completed":
		return "positive"
	case "pending", "processing":
		return "neutral"
	default:
		return "negative"
	}
}

// FormatAmount renders a monetary amount with two decimal places and
// thousands separators.
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := ""
	if strings.HasPrefix(fixed, "-") {
		neg = "-"
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	return fmt.Sprintf("%v%v.%v", neg, strings.Join(grouped, ","), parts[1])
}

// MaskAccountNumber hides all but the last four digits of an account number
// for display. Short values are masked entirely.
func MaskAccountNumber(account string) string {
	if account == "" {
		return ""
	}
	if len(account) <= 4 {
		return strings.Repeat("*", len(account))
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}

// FormatDateTime renders an upstream timestamp for table cells.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

// FormatRecentTime renders a short relative time for activity columns.
func FormatRecentTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	duration := time.Since(*t)
	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		return fmt.Sprintf("%vm ago", int(duration.Minutes()))
	case duration < 24*time.Hour:
		return fmt.Sprintf("%vh ago", int(duration.Hours()))
	default:
		return fmt.Sprintf("%vd ago", int(duration.Hours()/24))
	}
}
