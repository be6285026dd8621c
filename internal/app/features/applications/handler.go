// internal/app/features/applications/handler.go
package applications

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/empoderata/academy/internal/app/system/htmlsanitize"
	"github.com/empoderata/academy/internal/app/system/inputval"
	"github.com/empoderata/academy/internal/app/system/limits"
	"github.com/empoderata/academy/internal/app/system/mailer"
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/empoderata/academy/internal/domain/models"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgMissingContact = "Missing required fields: fullName and email are required"
)

// Config holds the application form limits.
type Config struct {
	Site               mailer.Site
	MaxAttachments     int
	MaxAttachmentBytes int64 // decoded size per file
	MaxBodyBytes       int64 // 0 means unlimited
}

// Handler forwards learnership applications to the admissions inbox.
// Applications are not stored. A nil Mailer skips sending and still reports
// success.
type Handler struct {
	Mailer *mailer.Mailer
	Config Config
	Log    *zap.Logger

	validate *inputval.Validator
}

func NewHandler(m *mailer.Mailer, cfg Config, logger *zap.Logger) *Handler {
	if cfg.MaxAttachments <= 0 {
		cfg.MaxAttachments = limits.MaxAttachments
	}
	if cfg.MaxAttachmentBytes <= 0 {
		cfg.MaxAttachmentBytes = limits.MaxAttachmentSize
	}
	return &Handler{
		Mailer:   m,
		Config:   cfg,
		Log:      logger,
		validate: inputval.New(),
	}
}

type contactCheck struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

type attachmentCheck struct {
	Filename string `json:"filename" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

type submitResponse struct {
	OK       bool `json:"ok"`
	SendGrid bool `json:"sendgrid"`
}

// Submit handles POST /api/submit-application.
//
// Once the body passes validation the response is always
// {"ok":true,"sendgrid":<email configured>}; delivery failures are only logged.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if h.Config.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.Config.MaxBodyBytes)
	}
	var app models.Application
	if err := render.DecodeJSON(body, &app); err != nil {
		h.Log.Info("application: bad request body", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}
	normalize(&app)

	if err := h.validate.Struct(contactCheck{FullName: app.FullName, Email: app.Email}); err != nil {
		h.Log.Info("application: missing required fields", zap.Strings("fields", inputval.Fields(err)))
		respond.Error(w, r, http.StatusBadRequest, msgMissingContact)
		return
	}
	if msg := h.checkAttachments(app.Attachments); msg != "" {
		respond.Error(w, r, http.StatusBadRequest, msg)
		return
	}

	if h.Mailer == nil {
		h.Log.Warn("email not configured; application not sent",
			zap.String("full_name", app.FullName),
			zap.String("email", app.Email),
			zap.String("programme_id", app.ProgrammeID))
		respond.JSON(w, r, http.StatusOK, submitResponse{OK: true, SendGrid: false})
		return
	}

	e := mailer.BuildApplicationEmail(mailer.ApplicationMailData{Site: h.Config.Site, Application: app})
	e.To = h.Mailer.NotifyAddress()
	e.ReplyTo = app.Email
	// Delivery is not tied to the client connection.
	if h.Mailer.Deliver(context.WithoutCancel(r.Context()), e) {
		h.Log.Info("application email sent",
			zap.String("to", e.To),
			zap.String("programme_id", app.ProgrammeID),
			zap.Int("attachments", len(app.Attachments)))
	}

	respond.JSON(w, r, http.StatusOK, submitResponse{OK: true, SendGrid: true})
}

func normalize(a *models.Application) {
	for _, f := range []*string{
		&a.FullName, &a.IDNumber, &a.DOB, &a.ContactNumber, &a.Address,
		&a.HighestQualification, &a.EmployerDetails, &a.Employed,
		&a.Disability, &a.DisabilityType, &a.Comments, &a.ProgrammeID,
	} {
		*f = htmlsanitize.PlainText(*f)
	}
	a.Email = strings.TrimSpace(a.Email)
	a.NumApplying = models.FlexString(htmlsanitize.PlainText(string(a.NumApplying)))

	for i := range a.Attachments {
		att := &a.Attachments[i]
		att.Filename = strings.TrimSpace(att.Filename)
		att.Data = stripDataURL(strings.TrimSpace(att.Data))
		if att.Type == "" {
			att.Type = "application/octet-stream"
		}
	}
}

// stripDataURL removes a "data:<type>;base64," prefix if the browser sent
// the FileReader result unmodified.
func stripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ";base64,"); i >= 0 {
		return s[i+len(";base64,"):]
	}
	return s
}

// checkAttachments returns a client-facing message for the first problem
// found, or "" when every attachment is acceptable.
func (h *Handler) checkAttachments(atts []models.Attachment) string {
	if len(atts) > h.Config.MaxAttachments {
		return fmt.Sprintf("At most %d attachments are allowed", h.Config.MaxAttachments)
	}
	for _, a := range atts {
		if err := h.validate.Struct(attachmentCheck{Filename: a.Filename, Data: a.Data}); err != nil {
			name := a.Filename
			if name == "" {
				name = "(unnamed)"
			}
			return "Invalid attachment: " + name
		}
		if decodedLen(a.Data) > h.Config.MaxAttachmentBytes {
			return fmt.Sprintf("Attachment %s exceeds %d MB", a.Filename, h.Config.MaxAttachmentBytes>>20)
		}
	}
	return ""
}

func decodedLen(b64 string) int64 {
	n := int64(base64.StdEncoding.DecodedLen(len(b64)))
	return n - int64(strings.Count(b64[max(0, len(b64)-2):], "="))
}
