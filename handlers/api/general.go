package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

var logger = logrus.StandardLogger().WithField("module", "api")

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.WithError(err).Error("error encoding json response")
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, &messageResponse{Message: "Unauthorized"})
}

// resolveSession returns the caller's session or writes the uniform 401.
// The upstream api is never contacted for unauthenticated callers.
func resolveSession(w http.ResponseWriter, r *http.Request) (*types.Session, bool) {
	session, err := services.GlobalSessionService.ResolveSession(r)
	if err != nil {
		writeUnauthorized(w)
		return nil, false
	}
	return session, true
}

// proxyUpstream forwards the request to the fixed upstream path and passes
// the upstream status code and body back verbatim. Successful mutations are
// recorded in the audit log.
func proxyUpstream(w http.ResponseWriter, r *http.Request, session *types.Session, method, upstreamPath string) {
	resp, err := upstream.GlobalClient.Do(r.Context(), session.Token, method, upstreamPath, r.Body, r.Header.Get("Content-Type"))
	if err != nil {
		if upstream.IsOutage(err) {
			writeJSON(w, http.StatusServiceUnavailable, &messageResponse{Message: "service unavailable"})
			return
		}
		logger.WithError(err).Errorf("error proxying %v %v", method, upstreamPath)
		writeJSON(w, http.StatusBadGateway, &messageResponse{Message: "request failed"})
		return
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		services.GlobalAuditService.RecordMutation(session, method, r.URL.Path, resp.StatusCode, &dbtypes.AuditLogDetails{
			UpstreamPath: upstreamPath,
			ContentType:  r.Header.Get("Content-Type"),
			RequestSize:  r.ContentLength,
		})
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		logger.WithError(err).Error("error writing proxy response")
	}
}
