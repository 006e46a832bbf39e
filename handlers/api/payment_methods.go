package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// APIPaymentMethodCreate creates a payment method for the caller's merchant account.
// @Summary Create a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Success 201 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /merchant/payment-methods [post]
func APIPaymentMethodCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	proxyUpstream(w, r, session, http.MethodPost, "/api/v1/merchant/payment-methods")
}

// APIPaymentMethodSetPrimary marks a payment method as the primary one.
// @Summary Mark a payment method as primary
// @Tags payment-methods
// @Produce json
// @Param id path int true "payment method id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /merchant/payment-methods/{id}/set-primary [patch]
func APIPaymentMethodSetPrimary(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodPatch, fmt.Sprintf("/api/v1/merchant/payment-methods/%v/set-primary", vars["id"]))
}

// APIPaymentMethodDelete deletes a payment method.
// @Summary Delete a payment method
// @Tags payment-methods
// @Produce json
// @Param id path int true "payment method id"
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 401 {object} messageResponse
// @Router /merchant/payment-methods/{id} [delete]
func APIPaymentMethodDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	proxyUpstream(w, r, session, http.MethodDelete, fmt.Sprintf("/api/v1/merchant/payment-methods/%v", vars["id"]))
}
