// internal/app/system/auth/auth.go

// Package auth provides the request guards for the API: bearer-token role
// checks for human callers and a static API key check for bot pollers.
// Middleware validates the credential, attaches the caller's claims to the
// request context, and rejects with a JSON error before a handler runs.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	botIDKey  ctxKey = "botID"
)

// Claims returns the verified token claims attached by RequireRole.
func Claims(r *http.Request) (*token.Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*token.Claims)
	return c, ok
}

// BotID returns the X-Bot-ID header value attached by RequireAPIKey.
// Empty when the poller did not identify itself.
func BotID(r *http.Request) string {
	id, _ := r.Context().Value(botIDKey).(string)
	return id
}

// WithTestClaims attaches claims directly to the request context,
// bypassing token verification. Test helper only.
func WithTestClaims(r *http.Request, c *token.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.Fields(h)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// RequireRole guards a route with a bearer-token role check. The token must
// decode, be an access token, and carry the required role; "admin" passes
// every check.
func RequireRole(svc *token.Service, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "missing or malformed Authorization header")
				return
			}

			claims, ok := svc.Decode(raw)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Type != token.TypeAccess {
				httpjson.Error(w, http.StatusUnauthorized, "invalid token type")
				return
			}
			if claims.Role != role && claims.Role != "admin" {
				httpjson.Error(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPIKey guards bot routes with a static X-API-Key header check.
// The optional X-Bot-ID header is passed through in the request context so
// claimed tasks can be stamped with the polling bot's identifier.
func RequireAPIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if apiKey == "" || provided != apiKey {
				httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if botID := r.Header.Get("X-Bot-ID"); botID != "" {
				r = r.WithContext(context.WithValue(r.Context(), botIDKey, botID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
