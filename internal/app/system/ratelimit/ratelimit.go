// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/empoderata/academy/internal/app/system/respond"
	"go.uber.org/zap"
)

// TooManyMessage is the error returned to rate-limited submitters.
const TooManyMessage = "Too many submissions. Please try again later."

// Limiter is a fixed-window counter keyed by client. It is safe for
// concurrent use.
//
// TrustProxy makes Middleware key on X-Forwarded-For / X-Real-IP. Those
// headers are client-controlled, so enable it only when the service sits
// behind a proxy that overwrites them. Set it before serving requests.
type Limiter struct {
	TrustProxy bool

	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per key per duration. A
// background goroutine drops expired windows until Close is called.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop(2 * duration)
	return l
}

// Allow reports whether a request from key fits in the current window and
// counts it when it does.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Remaining returns how many requests key may still make in its window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || l.now().After(w.expiresAt) {
		return l.limit
	}
	if r := l.limit - w.count; r > 0 {
		return r
	}
	return 0
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, w := range l.windows {
				if now.After(w.expiresAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// ClientIP extracts the client IP from an HTTP request. With trustProxy
// the first X-Forwarded-For entry, then X-Real-IP, are used when present;
// otherwise only RemoteAddr (port stripped) counts.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Middleware rejects requests over the limit with 429 and a JSON error and
// reports the requests left in X-RateLimit-Remaining. A nil limiter
// disables limiting.
func Middleware(l *Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, l.TrustProxy)
			allowed := l.Allow(ip)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(l.Remaining(ip)))
			if !allowed {
				logger.Warn("submission rate limited",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path))
				respond.Error(w, r, http.StatusTooManyRequests, TooManyMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
