package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRateLimitByClientIP(t *testing.T) {
	limited := RateLimit(1, time.Minute)(noContent())

	first := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/pdf", nil)
	first.RemoteAddr = "203.0.113.10:4444"
	firstRec := httptest.NewRecorder()
	limited.ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", firstRec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/pdf", nil)
	second.RemoteAddr = "203.0.113.10:5555"
	secondRec := httptest.NewRecorder()
	limited.ServeHTTP(secondRec, second)
	if secondRec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled by ip key, got %d", secondRec.Code)
	}
	if secondRec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	other := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/pdf", nil)
	other.RemoteAddr = "198.51.100.7:1234"
	otherRec := httptest.NewRecorder()
	limited.ServeHTTP(otherRec, other)
	if otherRec.Code != http.StatusNoContent {
		t.Fatalf("expected a different client to pass, got %d", otherRec.Code)
	}
}

func TestRateLimitPrefersForwardedFor(t *testing.T) {
	limited := RateLimit(1, time.Minute)(noContent())

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1000"
		req.Header.Set("X-Forwarded-For", "192.0.2.44, 10.0.0.1")
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i, want, rec.Code)
		}
	}
}

func TestRateLimitWindowReset(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)
	limited := RateLimit(1, time.Minute, withClock(func() time.Time { return now }))(noContent())

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.0.2.20:1111"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", code)
	}
	now = now.Add(61 * time.Second)
	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected request after window reset to pass, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	limited := RateLimit(0, time.Minute)(noContent())
	for range 3 {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected disabled limiter to pass, got %d", rec.Code)
		}
	}
}

func TestRateLimitCustomKey(t *testing.T) {
	limited := RateLimit(1, time.Minute, WithKeyFunc(func(r *http.Request) string {
		return r.Header.Get("X-Tenant")
	}))(noContent())

	for _, tenant := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Tenant", tenant)
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("tenant %s: expected pass, got %d", tenant, rec.Code)
		}
	}
}
