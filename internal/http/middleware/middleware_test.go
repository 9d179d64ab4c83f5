package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diagnosis/luxehaven/internal/csrf"
	"github.com/diagnosis/luxehaven/internal/platform/auth"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		contentType string
		want        int
	}{
		{"application/json", http.StatusOK},
		{"application/json; charset=utf-8", http.StatusOK},
		{"text/plain", http.StatusBadRequest},
		{"", http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		if tt.contentType != "" {
			req.Header.Set("Content-Type", tt.contentType)
		}
		rec := httptest.NewRecorder()
		RequireJSON(okHandler).ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%q: got %d, want %d", tt.contentType, rec.Code, tt.want)
		}
		if tt.want == http.StatusBadRequest && !strings.Contains(rec.Body.String(), `"error":"Invalid content type"`) {
			t.Errorf("%q: unexpected body %s", tt.contentType, rec.Body.String())
		}
	}
}

type errStore struct{}

func (errStore) Issue(context.Context) (string, error)          { return "", errors.New("down") }
func (errStore) Validate(context.Context, string) (bool, error) { return false, errors.New("down") }

func TestRequireCSRF(t *testing.T) {
	store := csrf.NewMemoryStore(time.Hour, 10)
	token, err := store.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		store csrf.Store
		token string
		want  int
	}{
		{"valid", store, token, http.StatusOK},
		{"missing", store, "", http.StatusForbidden},
		{"unknown", store, strings.Repeat("a", 64), http.StatusForbidden},
		{"store error", errStore{}, token, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
			if tt.token != "" {
				req.Header.Set(CSRFHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			RequireCSRF(tt.store)(okHandler).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusForbidden && !strings.Contains(rec.Body.String(), `"error":"Invalid CSRF token"`) {
				t.Fatalf("unexpected body %s", rec.Body.String())
			}
		})
	}
}

func TestRequireJWT(t *testing.T) {
	tokens := auth.NewTokens("test-secret")
	admin, _ := tokens.NewAccessToken("1", "ops@luxehaven.com", auth.RoleAdmin, time.Hour)
	staff, _ := tokens.NewAccessToken("2", "desk@luxehaven.com", "staff", time.Hour)

	var gotRole string
	h := RequireJWT(tokens, auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = Claims(r).Role
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"admin", "Bearer " + admin, http.StatusOK},
		{"wrong role", "Bearer " + staff, http.StatusForbidden},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
		{"basic auth", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
	if gotRole != auth.RoleAdmin {
		t.Fatalf("claims not propagated, got role %q", gotRole)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(NewMemoryCounter(), RateLimitConfig{Requests: 2, Window: time.Minute})
	h := rl.Middleware()(okHandler)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := send("10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
	rec := send("10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "RATE_LIMIT_EXCEEDED") || rec.Header().Get("Retry-After") != "60" {
		t.Fatalf("unexpected 429 response %v %s", rec.Header(), rec.Body.String())
	}
	if rec := send("10.0.0.2"); rec.Code != http.StatusOK {
		t.Fatalf("other clients must not be limited, got %d", rec.Code)
	}
}

type failingCounter struct{}

func (failingCounter) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis down")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	h := NewRateLimiter(failingCounter{}, RateLimitConfig{Requests: 1, Window: time.Minute}).Middleware()(okHandler)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected fail-open 200, got %d", rec.Code)
		}
	}
}

func TestMemoryCounter_WindowResets(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCounter()
	c.now = func() time.Time { return now }

	ctx := context.Background()
	c.Incr(ctx, "k", time.Minute)
	if n, _ := c.Incr(ctx, "k", time.Minute); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	now = now.Add(time.Minute)
	if n, _ := c.Incr(ctx, "k", time.Minute); n != 1 {
		t.Fatalf("expected window reset, got %d", n)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff, xri   string
		trustProxy bool
		want       string
	}{
		{"remote addr", "", "", false, "192.0.2.1"},
		{"forwarded ignored by default", "203.0.113.7, 10.0.0.1", "", false, "192.0.2.1"},
		{"real ip ignored by default", "", "203.0.113.9", false, "192.0.2.1"},
		{"forwarded behind proxy", "203.0.113.7, 10.0.0.1", "", true, "203.0.113.7"},
		{"real ip behind proxy", "", "203.0.113.9", true, "203.0.113.9"},
		{"proxy without headers", "", "", true, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if ip := getClientIP(req, tt.trustProxy); ip != tt.want {
				t.Fatalf("got %q, want %q", ip, tt.want)
			}
		})
	}
}

func TestRateLimiter_RotatedForwardingHeaderSharesBudget(t *testing.T) {
	counter := NewMemoryCounter()
	h := NewRateLimiter(counter, RateLimitConfig{Requests: 2, Window: time.Minute}).Middleware()(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("rotating X-Forwarded-For must not reset the budget, got %v", codes)
	}
	if len(counter.windows) != 1 {
		t.Fatalf("expected one counter window, got %d", len(counter.windows))
	}
}
