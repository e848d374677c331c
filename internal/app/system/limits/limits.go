// internal/app/system/limits/limits.go
package limits

import "net/http"

// Request body size limits. These prevent memory exhaustion from oversized
// requests.
const (
	// MaxJSONBody is the maximum size for JSON request bodies. The largest
	// legitimate payloads here are segment filter documents and bulk-send
	// templates, which stay far below this.
	MaxJSONBody = 1 << 20 // 1 MB
)

// JSONBody is middleware that caps request bodies at MaxJSONBody. Handlers
// decoding an over-limit body get an error from Decode and return 400.
func JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBody)
		}
		next.ServeHTTP(w, r)
	})
}
