// Package auth serves account registration, login, and token refresh.
package auth

import (
	"net/http"
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/inputval"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password hashes.
const BcryptCost = 12

// Handler holds the auth feature's dependencies.
type Handler struct {
	Users  *userstore.Store
	Tokens *token.Service
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(users *userstore.Store, tokens *token.Service, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Tokens: tokens, Log: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

// HandleRegister handles POST /auth/register. Duplicate emails are a 400;
// malformed fields are a 422 with per-field messages.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "auth register")
	defer cancel()

	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fields := map[string]string{}
	if req.Email == "" {
		fields["email"] = "required"
	} else if !inputval.IsValidEmail(req.Email) {
		fields["email"] = "must be a valid email address"
	}
	if len(req.Password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) > 0 {
		httpjson.FieldErrors(w, fields)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		h.Log.Error("register: hash password", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	u, err := h.Users.Create(ctx, models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         strings.TrimSpace(req.Role),
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.Log.Error("register: create user", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	httpjson.Write(w, http.StatusCreated, userResponse{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /auth/login. Unknown email and wrong password
// return the same 401 so callers cannot probe for accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "auth login")
	defer cancel()

	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("login: load user", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	access, err := h.Tokens.IssueAccess(u.Email, u.Role, u.ID.Hex())
	if err != nil {
		h.Log.Error("login: issue access token", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}
	refresh, err := h.Tokens.IssueRefresh(u.Email, u.Role, u.ID.Hex())
	if err != nil {
		h.Log.Error("login: issue refresh token", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
		"user": userResponse{
			ID:       u.ID.Hex(),
			Email:    u.Email,
			FullName: u.FullName,
			Role:     u.Role,
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// HandleRefresh handles POST /auth/refresh, exchanging a refresh token for a
// new access token.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.RefreshToken == "" {
		httpjson.Error(w, http.StatusBadRequest, "Missing refresh token")
		return
	}

	access, err := h.Tokens.Refresh(req.RefreshToken)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{
		"access_token": access,
		"token_type":   "bearer",
	})
}
