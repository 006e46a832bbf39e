package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// APIUserCreate creates a dashboard user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/users [post]
func APIUserCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	proxyUpstream(w, r, session, http.MethodPost, "/api/v1/admin/users")
}

// APIUserUpdate updates a user's role or active state.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/users/{id} [patch]
func APIUserUpdate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodPatch, fmt.Sprintf("/api/v1/admin/users/%v", vars["id"]))
}

// APIUserDelete deletes a user.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/users/{id} [delete]
func APIUserDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%v", vars["id"]))
}

// APIUserResetPassword issues a password reset for a user.
// @Summary Reset a user's password
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /admin/users/{id}/reset-password [post]
func APIUserResetPassword(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%v/reset-password", vars["id"]))
}
