// internal/app/system/token/token.go

// Package token issues and validates the signed bearer tokens used by the
// API. Access and refresh tokens share one claim shape and are told apart
// by the embedded "type" claim.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Default expiry windows.
const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// ErrNotRefreshToken is returned by Refresh when the supplied token is not
// a valid refresh token.
var ErrNotRefreshToken = errors.New("not a valid refresh token")

// Claims is the payload embedded in every issued token.
type Claims struct {
	Role string `json:"role"`
	UID  string `json:"uid"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a shared HMAC secret.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a token service. Zero TTLs fall back to the defaults
// (30 minutes access, 7 days refresh).
func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	if accessTTL == 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL == 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccess signs a short-lived access token for the given user.
func (s *Service) IssueAccess(email, role, uid string) (string, error) {
	return s.issue(email, role, uid, TypeAccess, s.accessTTL)
}

// IssueRefresh signs a longer-lived refresh token for the given user.
func (s *Service) IssueRefresh(email, role, uid string) (string, error) {
	return s.issue(email, role, uid, TypeRefresh, s.refreshTTL)
}

func (s *Service) issue(email, role, uid, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		UID:  uid,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Decode parses and verifies a token. It returns (nil, false) on signature
// failure or expiry; callers cannot distinguish the two.
func (s *Service) Decode(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	return claims, true
}

// Refresh validates a refresh token and issues a fresh access token carrying
// the same identity claims. The user record is not re-checked, so a deleted
// user can keep refreshing until the refresh token itself expires.
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, ok := s.Decode(refreshToken)
	if !ok || claims.Type != TypeRefresh {
		return "", ErrNotRefreshToken
	}
	return s.IssueAccess(claims.Subject, claims.Role, claims.UID)
}
