package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminClaims returns access-token claims with the admin role.
func AdminClaims() *token.Claims {
	return claimsFor("admin@test.com", "admin")
}

// WorkerClaims returns access-token claims with the worker role.
func WorkerClaims() *token.Claims {
	return claimsFor("worker@test.com", "worker")
}

func claimsFor(email, role string) *token.Claims {
	return &token.Claims{
		Role: role,
		UID:  primitive.NewObjectID().Hex(),
		Type: token.TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: email,
		},
	}
}

// NewRequest creates an HTTP request for handler tests.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request with a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedRequest creates an HTTP request with claims in context,
// bypassing token verification.
func NewAuthenticatedRequest(method, target string, c *token.Claims) *http.Request {
	return auth.WithTestClaims(httptest.NewRequest(method, target, nil), c)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
