package health

import (
	"net/http"

	"github.com/empoderata/academy/internal/app/system/respond"
	"go.uber.org/zap"
)

// Secrets reports which credentials the process was started with. Only
// presence is recorded; values never reach this package.
type Secrets struct {
	SendGridAPIKey      bool
	SendGridFrom        string // not a secret, reported verbatim
	FirebaseProjectID   bool
	FirebaseClientEmail bool
	FirebasePrivateKey  bool
}

// Handler serves the configuration health probe.
type Handler struct {
	Secrets Secrets
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(secrets Secrets, logger *zap.Logger) *Handler {
	return &Handler{
		Secrets: secrets,
		Log:     logger,
	}
}

type envStatus struct {
	SendGridAPIKey      bool    `json:"SENDGRID_API_KEY"`
	SendGridFrom        *string `json:"SENDGRID_FROM"`
	FirebaseProjectID   bool    `json:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail bool    `json:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey  bool    `json:"FIREBASE_PRIVATE_KEY"`
}

type healthResponse struct {
	OK  bool      `json:"ok"`
	Env envStatus `json:"env"`
}

// Serve handles GET /api/health.
//
//	{ "ok":true, "env":{ "SENDGRID_API_KEY":true, "SENDGRID_FROM":"info@…", … } }
//
// SENDGRID_FROM is null when no sender is configured.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	s := h.Secrets
	env := envStatus{
		SendGridAPIKey:      s.SendGridAPIKey,
		FirebaseProjectID:   s.FirebaseProjectID,
		FirebaseClientEmail: s.FirebaseClientEmail,
		FirebasePrivateKey:  s.FirebasePrivateKey,
	}
	if s.SendGridFrom != "" {
		from := s.SendGridFrom
		env.SendGridFrom = &from
	}
	respond.JSON(w, r, http.StatusOK, healthResponse{OK: true, Env: env})
}
