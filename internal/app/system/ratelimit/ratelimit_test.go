package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/empoderata/academy/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := ratelimit.New(2, time.Minute)
	defer l.Close()

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should be allowed")
	}
	if l.Allow("a") {
		t.Error("third request should be limited")
	}
	if !l.Allow("b") {
		t.Error("other keys are counted separately")
	}
	if got := l.Remaining("a"); got != 0 {
		t.Errorf("Remaining(a): got %d, want 0", got)
	}
}

func TestLimiter_WindowExpires(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Close()

	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return now })

	if !l.Allow("a") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("a") {
		t.Fatal("second request should be limited")
	}
	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		trust   bool
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.2:1234", true, "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.2:1234", true, "198.51.100.4"},
		{"forwarded untrusted", map[string]string{"X-Forwarded-For": "203.0.113.9"}, "10.0.0.2:1234", false, "10.0.0.2"},
		{"real ip untrusted", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:1234", false, "10.0.0.2"},
		{"remote with port", nil, "192.0.2.7:5555", true, "192.0.2.7"},
		{"remote without port", nil, "192.0.2.7", false, "192.0.2.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ratelimit.ClientIP(r, tt.trust); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware_Returns429(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Close()

	h := ratelimit.Middleware(l, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submit-quote", nil))
		if rec.Code != want {
			t.Errorf("request %d: got %d, want %d", i+1, rec.Code, want)
		}
		if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
			t.Errorf("request %d: remaining header %q, want 0", i+1, got)
		}
	}
}

func TestMiddleware_ForwardedHeaderIgnoredWithoutTrust(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Close()

	h := ratelimit.Middleware(l, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 2)
	for _, xff := range []string{"203.0.113.1", "203.0.113.2"} {
		r := httptest.NewRequest(http.MethodPost, "/api/submit-quote", nil)
		r.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Errorf("rotating X-Forwarded-For bypassed the limit: %v", codes)
	}
}

func TestMiddleware_TrustProxyKeysOnForwardedFor(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Close()
	l.TrustProxy = true

	h := ratelimit.Middleware(l, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, xff := range []string{"203.0.113.1", "203.0.113.2"} {
		r := httptest.NewRequest(http.MethodPost, "/api/submit-quote", nil)
		r.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", xff, rec.Code)
		}
	}
}

func TestLimiter_CloseIsIdempotent(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	l.Close()
	l.Close()
}

func TestMiddleware_NilLimiterPassesThrough(t *testing.T) {
	called := 0
	h := ratelimit.Middleware(nil, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	}))
	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}
	if called != 5 {
		t.Errorf("called: got %d, want 5", called)
	}
}
