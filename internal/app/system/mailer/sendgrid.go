// internal/app/system/mailer/sendgrid.go
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid delivers email through the SendGrid v3 mail API.
type SendGrid struct {
	client *sendgrid.Client
}

// NewSendGrid creates a SendGrid sender authenticated with apiKey.
func NewSendGrid(apiKey string) *SendGrid {
	return &SendGrid{client: sendgrid.NewSendClient(apiKey)}
}

// StatusError reports a non-2xx response from the mail API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sendgrid: status %d: %s", e.StatusCode, e.Body)
}

// Send delivers e. Transport errors and non-2xx responses are returned.
func (s *SendGrid) Send(ctx context.Context, e Email) error {
	resp, err := s.client.SendWithContext(ctx, buildMessage(e))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}

// buildMessage converts an Email to the v3 mail payload. The plain-text part
// must come before the HTML part.
func buildMessage(e Email) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(e.FromName, e.From))
	m.Subject = e.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", e.To))
	m.AddPersonalizations(p)

	if e.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", e.ReplyTo))
	}
	if e.TextBody != "" {
		m.AddContent(mail.NewContent("text/plain", e.TextBody))
	}
	if e.HTMLBody != "" {
		m.AddContent(mail.NewContent("text/html", e.HTMLBody))
	}

	for _, a := range e.Attachments {
		att := mail.NewAttachment()
		att.SetContent(a.Content)
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		m.AddAttachment(att)
	}
	return m
}
