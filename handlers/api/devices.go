package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// APIDeviceCreate registers a new collection device.
// @Summary Create a device
// @Tags devices
// @Accept json
// @Produce json
// @Success 201 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/create-device [post]
func APIDeviceCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	proxyUpstream(w, r, session, http.MethodPost, "/api/v1/admin/devices")
}

// APIDeviceUpdate updates a device's name or assignment.
// @Summary Update a device
// @Tags devices
// @Accept json
// @Produce json
// @Param id path int true "device id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/device/{id}/update [patch]
func APIDeviceUpdate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodPatch, fmt.Sprintf("/api/v1/admin/devices/%v", vars["id"]))
}

// APIDeviceToggle toggles a device between active and inactive.
// @Summary Toggle a device active state
// @Tags devices
// @Produce json
// @Param id path int true "device id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/device/{id}/toggle [patch]
func APIDeviceToggle(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodPatch, fmt.Sprintf("/api/v1/admin/devices/%v/toggle", vars["id"]))
}
