package middleware

import (
	"net/http"

	"github.com/zeonixpay/zeonix-dashboard/services"
)

// RateLimitMiddleware rejects callers that exceed the per-visitor call
// budget. A nil global limiter disables the check.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := services.GlobalCallRateLimiter.CheckCallLimit(r, 1); err != nil {
			http.Error(w, "429 Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
