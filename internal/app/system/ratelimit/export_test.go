package ratelimit

import "time"

// SetClock replaces the limiter's clock for tests.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
