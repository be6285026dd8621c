package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/empoderata/academy/internal/app/system/timeouts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{DBWrite: 3 * time.Second})

	got := timeouts.Current()
	if got.DBWrite != 3*time.Second {
		t.Errorf("DBWrite: got %v, want 3s", got.DBWrite)
	}
	if got.MailSend != timeouts.DefaultMailSend || got.Ping != timeouts.DefaultPing {
		t.Errorf("unset values changed: %+v", got)
	}
}

func TestReset(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Minute, MailSend: time.Minute})
	timeouts.Reset()

	if timeouts.Ping() != timeouts.DefaultPing || timeouts.MailSend() != timeouts.DefaultMailSend {
		t.Errorf("Reset did not restore defaults: %+v", timeouts.Current())
	}
}

func TestWithTimeout_LogsOnDeadline(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.New(core), "save quote")
	<-ctx.Done()
	cancel()

	entries := logs.FilterMessage("operation timed out").All()
	if len(entries) != 1 {
		t.Fatalf("expected one timeout log, got %d", len(entries))
	}
	if op := entries[0].ContextMap()["operation"]; op != "save quote" {
		t.Errorf("operation: got %v", op)
	}
}

func TestWithTimeout_SilentWhenCancelledEarly(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	_, cancel := timeouts.WithTimeout(context.Background(), time.Hour, zap.New(core), "send mail")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no logs, got %d", logs.Len())
	}
}
