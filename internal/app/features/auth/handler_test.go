package auth_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/features/auth"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/indexes"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) *auth.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll() error = %v", err)
	}
	tokens := token.NewService("test-secret", 30*time.Minute, 7*24*time.Hour)
	return auth.NewHandler(userstore.New(db), tokens, zap.NewNop())
}

func register(t *testing.T, h *auth.Handler, body string) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	h.HandleRegister(rec, testutil.NewJSONRequest("POST", "/auth/register", body))
	return rec
}

func TestRegister(t *testing.T) {
	h := newHandler(t)

	rec := register(t, h, `{"email":"ana@example.com","password":"secret123","full_name":"Ana García"}`)
	rec.AssertStatus(t, 201)
	rec.AssertContains(t, `"email":"ana@example.com"`)
	rec.AssertContains(t, `"role":"worker"`)
}

func TestRegisterDuplicate(t *testing.T) {
	h := newHandler(t)

	register(t, h, `{"email":"ana@example.com","password":"secret123"}`).AssertStatus(t, 201)

	rec := register(t, h, `{"email":"ana@example.com","password":"secret123"}`)
	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "Email already registered")
}

func TestRegisterValidation(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing email", `{"password":"secret123"}`, "email"},
		{"bad email", `{"email":"not-an-email","password":"secret123"}`, "email"},
		{"short password", `{"email":"ana@example.com","password":"short"}`, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := register(t, h, tt.body)
			rec.AssertStatus(t, 422)
			rec.AssertContains(t, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	h := newHandler(t)
	register(t, h, `{"email":"ana@example.com","password":"secret123"}`).AssertStatus(t, 201)

	rec := testutil.NewRecorder()
	h.HandleLogin(rec, testutil.NewJSONRequest("POST", "/auth/login", `{"email":"ana@example.com","password":"secret123"}`))
	rec.AssertStatus(t, 200)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		User         struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q", resp.TokenType)
	}
	if resp.User.Email != "ana@example.com" {
		t.Errorf("user.email = %q", resp.User.Email)
	}

	// Issued tokens must verify against the same service.
	claims, ok := h.Tokens.Decode(resp.AccessToken)
	if !ok {
		t.Fatal("access token does not verify")
	}
	if claims.Type != token.TypeAccess {
		t.Errorf("claims.Type = %q", claims.Type)
	}
}

func TestLoginUniform401(t *testing.T) {
	h := newHandler(t)
	register(t, h, `{"email":"ana@example.com","password":"secret123"}`).AssertStatus(t, 201)

	// Unknown account and wrong password look identical to the caller.
	for _, body := range []string{
		`{"email":"nobody@example.com","password":"secret123"}`,
		`{"email":"ana@example.com","password":"wrong-password"}`,
	} {
		rec := testutil.NewRecorder()
		h.HandleLogin(rec, testutil.NewJSONRequest("POST", "/auth/login", body))
		rec.AssertStatus(t, 401)
		rec.AssertContains(t, "Invalid credentials")
	}
}

func TestRefresh(t *testing.T) {
	h := newHandler(t)
	register(t, h, `{"email":"ana@example.com","password":"secret123"}`).AssertStatus(t, 201)

	login := testutil.NewRecorder()
	h.HandleLogin(login, testutil.NewJSONRequest("POST", "/auth/login", `{"email":"ana@example.com","password":"secret123"}`))
	login.AssertStatus(t, 200)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	t.Run("exchanges refresh for access", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.HandleRefresh(rec, testutil.NewJSONRequest("POST", "/auth/refresh", `{"refresh_token":"`+resp.RefreshToken+`"}`))
		rec.AssertStatus(t, 200)
		rec.AssertContains(t, "access_token")
	})

	t.Run("rejects access token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.HandleRefresh(rec, testutil.NewJSONRequest("POST", "/auth/refresh", `{"refresh_token":"`+resp.AccessToken+`"}`))
		rec.AssertStatus(t, 401)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.HandleRefresh(rec, testutil.NewJSONRequest("POST", "/auth/refresh", `{}`))
		rec.AssertStatus(t, 400)
		rec.AssertContains(t, "Missing refresh token")
	})
}
