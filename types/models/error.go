package models

import (
	"time"
)

// ErrorPageData is a struct to hold info for the error page
type ErrorPageData struct {
	CallTime time.Time
	CallUrl  string
	ErrorMsg string
	Version  string
}
