// Package mailer builds and delivers transactional email.
//
// Delivery goes through a Sender (SendGrid in production). A Mailer wraps a
// Sender with the site's sender identity and a bounded retry policy; a nil
// *Mailer means email is not configured and callers skip sending.
package mailer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Email is one outbound message. Either body may be empty.
type Email struct {
	To       string
	From     string
	FromName string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string

	Attachments []Attachment
}

// Attachment is a file carried by an Email. Content is base64 (standard
// encoding), the form the email API expects.
type Attachment struct {
	Filename    string
	ContentType string
	Content     string
}

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// Config holds the sender identity and delivery policy for a Mailer.
type Config struct {
	From        string
	FromName    string
	Notify      string // admin notification recipient
	Retry       Retry
	SendTimeout time.Duration
}

// Mailer delivers email through a Sender with retries. Failures are logged
// and reported through the boolean result, never returned to callers.
type Mailer struct {
	Sender Sender
	Config Config
	Log    *zap.Logger
}

// New creates a Mailer.
func New(sender Sender, cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{Sender: sender, Config: cfg, Log: logger}
}

// NotifyAddress is the admin recipient for notification mail.
func (m *Mailer) NotifyAddress() string {
	return m.Config.Notify
}

// Deliver fills in the sender identity when e has none and sends e with
// retries. It returns true when a send attempt succeeded.
func (m *Mailer) Deliver(ctx context.Context, e Email) bool {
	if e.From == "" {
		e.From = m.Config.From
		if e.FromName == "" {
			e.FromName = m.Config.FromName
		}
	}
	if m.Config.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Config.SendTimeout)
		defer cancel()
	}
	return SendWithRetry(ctx, m.Sender, e, m.Config.Retry, m.Log)
}
