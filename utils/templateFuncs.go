package utils

import (
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/shopspring/decimal"
)

// GetTemplateFuncs will get the template functions
func GetTemplateFuncs() template.FuncMap {
	fm := template.FuncMap{}

	for k, v := range sprig.FuncMap() {
		fm[k] = v
	}

	customFuncs := template.FuncMap{
		"html":              func(x string) template.HTML { return template.HTML(x) },
		"contains":          strings.Contains,
		"mod":               func(i, j int) bool { return i%j == 0 },
		"sub":               func(i, j int) int { return i - j },
		"add":               func(i, j int) int { return i + j },
		"statusClass":       StatusClass,
		"formatAmount":      FormatAmount,
		"maskAccount":       MaskAccountNumber,
		"formatDateTime":    FormatDateTime,
		"formatRecentTime":  FormatRecentTime,
		"decimalIsZero":     func(d decimal.Decimal) bool { return d.IsZero() },
	}

	for k, v := range customFuncs {
		fm[k] = v
	}

	return fm
}
