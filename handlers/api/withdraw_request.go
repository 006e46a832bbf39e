package api

import (
	"net/http"
)

// APIWithdrawRequestCreate creates a withdraw request against the merchant balance.
// Validation happens upstream; error bodies come back verbatim so the
// client toast can show the upstream message.
// @Summary Create a withdraw request
// @Tags withdrawals
// @Accept json
// @Produce json
// @Success 201 {object} interface{} "upstream passthrough"
// @Failure 400 {object} interface{} "upstream validation error, passed through verbatim"
// @Failure 401 {object} messageResponse
// @Router /merchant/withdraw-request [post]
func APIWithdrawRequestCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}
	proxyUpstream(w, r, session, http.MethodPost, "/api/v1/merchant/withdraw-request")
}
