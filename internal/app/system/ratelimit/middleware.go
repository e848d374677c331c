// internal/app/system/ratelimit/middleware.go
package ratelimit

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
)

// Middleware rejects requests over the limiter's per-IP budget with a JSON
// 429. Used on the credential endpoints to slow brute-force attempts.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(ClientIP(r)) {
				httpjson.Error(w, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
