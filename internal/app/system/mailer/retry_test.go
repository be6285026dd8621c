package mailer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/empoderata/academy/internal/app/system/mailer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSender fails the first failN calls and records every email it sees.
type fakeSender struct {
	failN int
	calls int
	sent  []mailer.Email
}

func (f *fakeSender) Send(_ context.Context, e mailer.Email) error {
	f.calls++
	if f.calls <= f.failN {
		return errors.New("upstream unavailable")
	}
	f.sent = append(f.sent, e)
	return nil
}

type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return ctx.Err()
}

func retryPolicy(rec *sleepRecorder) mailer.Retry {
	r := mailer.DefaultRetry()
	r.Sleep = rec.sleep
	return r
}

func TestSendWithRetry_FirstAttemptSucceeds(t *testing.T) {
	s := &fakeSender{}
	rec := &sleepRecorder{}

	if ok := mailer.SendWithRetry(context.Background(), s, mailer.Email{To: "a@example.com"}, retryPolicy(rec), zap.NewNop()); !ok {
		t.Fatal("expected success")
	}
	if s.calls != 1 {
		t.Errorf("calls: got %d, want 1", s.calls)
	}
	if len(rec.waits) != 0 {
		t.Errorf("expected no waits, got %v", rec.waits)
	}
}

func TestSendWithRetry_SucceedsOnThirdAttempt(t *testing.T) {
	s := &fakeSender{failN: 2}
	rec := &sleepRecorder{}

	if ok := mailer.SendWithRetry(context.Background(), s, mailer.Email{To: "a@example.com"}, retryPolicy(rec), zap.NewNop()); !ok {
		t.Fatal("expected success on the third attempt")
	}
	if s.calls != 3 {
		t.Errorf("calls: got %d, want 3", s.calls)
	}
	want := []time.Duration{200 * time.Millisecond, 400 * time.Millisecond}
	if len(rec.waits) != len(want) || rec.waits[0] != want[0] || rec.waits[1] != want[1] {
		t.Errorf("waits: got %v, want %v", rec.waits, want)
	}
}

func TestSendWithRetry_AbandonsAfterThreeAttempts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := &fakeSender{failN: 10}
	rec := &sleepRecorder{}

	ok := mailer.SendWithRetry(context.Background(), s, mailer.Email{To: "a@example.com", Subject: "hi"}, retryPolicy(rec), zap.New(core))
	if ok {
		t.Fatal("expected failure")
	}
	if s.calls != 3 {
		t.Errorf("calls: got %d, want 3", s.calls)
	}
	// No wait after the final attempt.
	if len(rec.waits) != 2 {
		t.Errorf("waits: got %v, want two", rec.waits)
	}
	if n := logs.FilterMessage("mail send attempt failed").Len(); n != 3 {
		t.Errorf("attempt logs: got %d, want 3", n)
	}
	abandoned := logs.FilterMessage("mail abandoned after retries").All()
	if len(abandoned) != 1 {
		t.Fatalf("abandon logs: got %d, want 1", len(abandoned))
	}
	if abandoned[0].Level != zapcore.ErrorLevel {
		t.Errorf("abandon level: got %v, want error", abandoned[0].Level)
	}
}

func TestSendWithRetry_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &fakeSender{failN: 10}
	rec := &sleepRecorder{}

	if ok := mailer.SendWithRetry(ctx, s, mailer.Email{}, retryPolicy(rec), zap.NewNop()); ok {
		t.Fatal("expected failure")
	}
	if s.calls != 1 {
		t.Errorf("calls: got %d, want 1", s.calls)
	}
}

func TestSendWithRetry_ZeroAttemptsStillSendsOnce(t *testing.T) {
	s := &fakeSender{}
	if ok := mailer.SendWithRetry(context.Background(), s, mailer.Email{}, mailer.Retry{}, zap.NewNop()); !ok {
		t.Fatal("expected success")
	}
	if s.calls != 1 {
		t.Errorf("calls: got %d, want 1", s.calls)
	}
}

func TestMailer_DeliverFillsSender(t *testing.T) {
	s := &fakeSender{}
	m := mailer.New(s, mailer.Config{
		From:     "noreply@example.com",
		FromName: "Academy",
		Notify:   "info@example.com",
		Retry:    mailer.DefaultRetry(),
	}, zap.NewNop())

	if !m.Deliver(context.Background(), mailer.Email{To: "a@example.com"}) {
		t.Fatal("expected delivery")
	}
	if len(s.sent) != 1 {
		t.Fatalf("sent: got %d, want 1", len(s.sent))
	}
	got := s.sent[0]
	if got.From != "noreply@example.com" || got.FromName != "Academy" {
		t.Errorf("sender: got %q <%s>", got.FromName, got.From)
	}
	if m.NotifyAddress() != "info@example.com" {
		t.Errorf("NotifyAddress: got %q", m.NotifyAddress())
	}
}

func TestMailer_DeliverKeepsExplicitSender(t *testing.T) {
	s := &fakeSender{}
	m := mailer.New(s, mailer.Config{From: "noreply@example.com", FromName: "Academy"}, zap.NewNop())

	m.Deliver(context.Background(), mailer.Email{From: "other@example.com"})
	if got := s.sent[0]; got.From != "other@example.com" || got.FromName != "" {
		t.Errorf("sender: got %q <%s>", got.FromName, got.From)
	}
}
