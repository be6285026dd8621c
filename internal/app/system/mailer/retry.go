// internal/app/system/mailer/retry.go
package mailer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Default delivery policy: three attempts with a linear backoff of
// 200ms × attempt between them.
const (
	DefaultAttempts = 3
	DefaultBackoff  = 200 * time.Millisecond
)

// Retry is a bounded linear-backoff policy. The wait after failed attempt n
// is Backoff × n. There is no jitter and no wait after the final attempt.
type Retry struct {
	Attempts int
	Backoff  time.Duration

	// Sleep waits for d or until ctx is done. Nil uses a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetry returns the default delivery policy.
func DefaultRetry() Retry {
	return Retry{Attempts: DefaultAttempts, Backoff: DefaultBackoff}
}

func (r Retry) sleep(ctx context.Context, d time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SendWithRetry sends e through s, retrying failed attempts according to r.
// Each failure is logged; after the final failure the email is abandoned and
// false is returned. A cancelled context stops further attempts.
func SendWithRetry(ctx context.Context, s Sender, e Email, r Retry, logger *zap.Logger) bool {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		err := s.Send(ctx, e)
		if err == nil {
			return true
		}
		lastErr = err
		logger.Warn("mail send attempt failed",
			zap.Int("attempt", i),
			zap.String("to", e.To),
			zap.String("subject", e.Subject),
			zap.Error(err))

		if i == attempts {
			break
		}
		if err := r.sleep(ctx, r.Backoff*time.Duration(i)); err != nil {
			lastErr = err
			break
		}
	}

	logger.Error("mail abandoned after retries",
		zap.Int("attempts", attempts),
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
		zap.Error(lastErr))
	return false
}
