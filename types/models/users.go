package models

import (
	"time"
)

// UsersPageData is a struct to hold info for the user management page
type UsersPageData struct {
	FilterRole   string `json:"filter_role"`
	FilterStatus string `json:"filter_status"`
	FilterSearch string `json:"filter_search"`

	Users     []*UsersPageDataUser `json:"users"`
	UserCount int                  `json:"user_count"`

	ListPaging
}

type UsersPageDataUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	Time      time.Time  `json:"time"`
}
