package handlers

import (
	"context"
	"net/http"

	"github.com/zeonixpay/zeonix-dashboard/listview"
	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

var devicesFilterKeys = []string{"status"}

// Devices will return the combined devices & staff page using a template
func Devices(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("devices").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "devices/devices.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "administration", "/devices", "Devices & Staff", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), devicesFilterKeys)
	pageData, redirect, pageError := getDevicesPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "devices.go", "Devices", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

// getDevicesPageData loads the device list and the staff list with two
// independent upstream fetches. A failed section renders with its own
// error flag, an outage on either fetch escalates to the outage page.
func getDevicesPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.DevicesPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))
	client := upstream.GlobalClient

	var devicesEnvelope *types.ListEnvelope[types.Device]
	var devicesErr error
	var staffEnvelope *types.ListEnvelope[types.Staff]
	var staffErr error

	staffDone := make(chan bool)
	go func() {
		staffEnvelope, staffErr = upstream.FetchList[types.Staff](ctx, client, session.Token, "/api/v1/admin/staff", nil)
		close(staffDone)
	}()
	devicesEnvelope, devicesErr = upstream.FetchList[types.Device](ctx, client, session.Token, "/api/v1/admin/devices", filters.UpstreamQuery(client.DefaultPageSize()))
	<-staffDone

	for _, err := range []error{devicesErr, staffErr} {
		if err != nil && (upstream.IsOutage(err) || err == upstream.ErrNoToken) {
			return nil, "", err
		}
	}

	pageData := &models.DevicesPageData{
		FilterStatus: filters.Get("status"),
	}

	if devicesErr != nil {
		pageData.DevicesFailed = true
	} else {
		pager.Observe(devicesEnvelope.Count, len(devicesEnvelope.Data), devicesEnvelope.Next != nil, devicesEnvelope.Previous != nil)
		if page, needed := pager.ClampRedirect(); needed {
			return nil, filters.PageURL("/devices", page), nil
		}

		pageData.DeviceCount = devicesEnvelope.Count
		pageData.Devices = make([]*models.DevicesPageDataDevice, 0, len(devicesEnvelope.Data))
		for idx := range devicesEnvelope.Data {
			device := &devicesEnvelope.Data[idx]
			pageData.Devices = append(pageData.Devices, &models.DevicesPageDataDevice{
				ID:         device.ID,
				DeviceName: device.DeviceName,
				DeviceKey:  device.DeviceKey,
				Status:     device.Status,
				AssignedTo: device.AssignedTo,
				LastSeen:   device.LastSeen,
				Time:       device.CreatedAt,
			})
		}
	}

	if staffErr != nil {
		pageData.StaffFailed = true
	} else {
		pageData.StaffCount = staffEnvelope.Count
		pageData.Staff = make([]*models.DevicesPageDataStaff, 0, len(staffEnvelope.Data))
		for idx := range staffEnvelope.Data {
			staff := &staffEnvelope.Data[idx]
			pageData.Staff = append(pageData.Staff, &models.DevicesPageDataStaff{
				ID:       staff.ID,
				Name:     staff.Name,
				Email:    staff.Email,
				Role:     staff.Role,
				IsActive: staff.IsActive,
				Time:     staff.CreatedAt,
			})
		}
	}

	pageData.ListPaging = buildListPaging(filters, pager, "/devices")

	return pageData, "", nil
}
