// Package timeouts provides the timeout values used around I/O in HTTP
// handlers.
//
// Values can be set at startup with Configure; otherwise the defaults apply.
//   - Ping: connectivity checks at startup
//   - DBWrite: one submission write to the document store
//   - MailSend: one email delivery including retries
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults used when Configure is not called.
const (
	DefaultPing     = 2 * time.Second
	DefaultDBWrite  = 10 * time.Second
	DefaultMailSend = 15 * time.Second
)

var mu sync.RWMutex

var (
	ping     = DefaultPing
	dbWrite  = DefaultDBWrite
	mailSend = DefaultMailSend
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// DBWrite returns the timeout for a single submission write.
func DBWrite() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return dbWrite
}

// MailSend returns the timeout for delivering one email, retries included.
func MailSend() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return mailSend
}

// Config holds timeout values. Zero values are ignored.
type Config struct {
	Ping     time.Duration
	DBWrite  time.Duration
	MailSend time.Duration
}

// Configure sets custom timeout values, keeping the current value for any
// zero field. Call it during startup before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.DBWrite > 0 {
		dbWrite = cfg.DBWrite
	}
	if cfg.MailSend > 0 {
		mailSend = cfg.MailSend
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	dbWrite = DefaultDBWrite
	mailSend = DefaultMailSend
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, DBWrite: dbWrite, MailSend: mailSend}
}

// WithTimeout creates a context with timeout whose cancel function logs a
// warning when the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.DBWrite(), h.Log, "save quote")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
