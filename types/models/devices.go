package models

import (
	"time"
)

// DevicesPageData is a struct to hold info for the combined devices and
// staff page. The two sections are loaded independently, so each carries
// its own error flag.
type DevicesPageData struct {
	FilterStatus string `json:"filter_status"`

	Devices       []*DevicesPageDataDevice `json:"devices"`
	DeviceCount   int                      `json:"device_count"`
	DevicesFailed bool                     `json:"devices_failed"`

	Staff       []*DevicesPageDataStaff `json:"staff"`
	StaffCount  int                     `json:"staff_count"`
	StaffFailed bool                    `json:"staff_failed"`

	ListPaging
}

type DevicesPageDataDevice struct {
	ID         int64      `json:"id"`
	DeviceName string     `json:"device_name"`
	DeviceKey  string     `json:"device_key"`
	Status     string     `json:"status"`
	AssignedTo string     `json:"assigned_to"`
	LastSeen   *time.Time `json:"last_seen"`
	Time       time.Time  `json:"time"`
}

type DevicesPageDataStaff struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
	Time     time.Time `json:"time"`
}
