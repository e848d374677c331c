package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowWithinWindow(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("fourth request should be limited")
	}
	// Other keys have their own window.
	if !l.Allow("5.6.7.8") {
		t.Error("different key should be allowed")
	}
}

func TestWindowExpiry(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request should be limited")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestRemainingAndReset(t *testing.T) {
	l := New(2, time.Minute)

	if got := l.Remaining("k"); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}
	l.Allow("k")
	if got := l.Remaining("k"); got != 1 {
		t.Errorf("Remaining() = %d, want 1", got)
	}
	l.Reset("k")
	if got := l.Remaining("k"); got != 2 {
		t.Errorf("Remaining() after Reset = %d, want 2", got)
	}
}

func TestMiddleware(t *testing.T) {
	l := New(1, time.Minute)
	handler := Middleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(r *http.Request)
		remote string
		want   string
	}{
		{"x-forwarded-for", func(r *http.Request) { r.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2") }, "1.2.3.4:80", "10.0.0.1"},
		{"x-real-ip", func(r *http.Request) { r.Header.Set("X-Real-IP", "10.0.0.3") }, "1.2.3.4:80", "10.0.0.3"},
		{"remote addr with port", func(r *http.Request) {}, "1.2.3.4:80", "1.2.3.4"},
		{"remote addr without port", func(r *http.Request) {}, "1.2.3.4", "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			tt.setup(r)
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
