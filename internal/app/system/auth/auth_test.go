package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRole(t *testing.T) {
	svc := token.NewService("test-secret", 0, 0)
	guard := auth.RequireRole(svc, "worker")
	h := guard(okHandler())

	workerToken, err := svc.IssueAccess("worker@example.com", "worker", "w1")
	if err != nil {
		t.Fatal(err)
	}
	adminToken, err := svc.IssueAccess("admin@example.com", "admin", "a1")
	if err != nil {
		t.Fatal(err)
	}
	otherToken, err := svc.IssueAccess("viewer@example.com", "viewer", "v1")
	if err != nil {
		t.Fatal(err)
	}
	refreshToken, err := svc.IssueRefresh("worker@example.com", "worker", "w1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "worker-token-without-scheme", http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + refreshToken, http.StatusUnauthorized},
		{"wrong role", "Bearer " + otherToken, http.StatusForbidden},
		{"matching role", "Bearer " + workerToken, http.StatusOK},
		{"admin overrides", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/voluntarios", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleAttachesClaims(t *testing.T) {
	svc := token.NewService("test-secret", 0, 0)
	guard := auth.RequireRole(svc, "worker")

	var got *token.Claims
	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.Claims(r)
	}))

	raw, err := svc.IssueAccess("worker@example.com", "worker", "w1")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("claims were not attached to the request context")
	}
	if got.Subject != "worker@example.com" {
		t.Errorf("Subject = %q, want %q", got.Subject, "worker@example.com")
	}
}

func TestRequireAPIKey(t *testing.T) {
	guard := auth.RequireAPIKey("secret-key")

	var gotBotID string
	h := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBotID = auth.BotID(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bots/pending-tasks", nil)
		req.Header.Set("X-API-Key", "secret-key")
		req.Header.Set("X-Bot-ID", "bot-7")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if gotBotID != "bot-7" {
			t.Errorf("BotID = %q, want %q", gotBotID, "bot-7")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bots/pending-tasks", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bots/pending-tasks", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("empty configured key rejects everything", func(t *testing.T) {
		open := auth.RequireAPIKey("")(okHandler())
		req := httptest.NewRequest("GET", "/bots/pending-tasks", nil)
		req.Header.Set("X-API-Key", "")
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
