// internal/app/features/quotes/handler.go
package quotes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/empoderata/academy/internal/app/catalogue"
	submissionstore "github.com/empoderata/academy/internal/app/store/submissions"
	"github.com/empoderata/academy/internal/app/system/htmlsanitize"
	"github.com/empoderata/academy/internal/app/system/inputval"
	"github.com/empoderata/academy/internal/app/system/mailer"
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/empoderata/academy/internal/app/system/timeouts"
	"github.com/empoderata/academy/internal/domain/models"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Response messages.
const (
	msgInvalidBody      = "Invalid request body"
	msgMissingContact   = "Missing required fields: fullName and email are required"
	msgMissingStrict    = "Missing required fields"
	msgUnknownProgramme = "Unknown programme"
	msgFailed           = "Failed to process request"
	msgSaveFailed       = "Failed to save quote. Please try again later."

	msgQuoteOK       = "Quote submitted successfully"
	msgInquiryOK     = "Inquiry submitted successfully"
	msgStrictQuoteOK = "Quote submitted successfully. Our team will be in touch within 24-48 hours."
)

// Config holds the per-deployment settings of the quote handlers.
type Config struct {
	TenantID     string
	Site         mailer.Site
	MaxBodyBytes int64 // 0 means unlimited
}

// Handler serves the quote and inquiry submission endpoints.
//
// Store and Mailer are optional. A nil Store skips persistence and a nil
// Mailer skips notifications; both are logged and the request still succeeds.
type Handler struct {
	Store  submissionstore.Writer
	Mailer *mailer.Mailer
	Config Config
	Now    func() time.Time
	Log    *zap.Logger

	validate *inputval.Validator
}

func NewHandler(store submissionstore.Writer, m *mailer.Mailer, cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Mailer:   m,
		Config:   cfg,
		Now:      time.Now,
		Log:      logger,
		validate: inputval.New(),
	}
}

// submitRequest is the JSON body shared by the quote and contact forms.
// Price fields are accepted for compatibility and compared against the
// server-side calculation, never stored.
type submitRequest struct {
	Company       string            `json:"company"`
	FullName      string            `json:"fullName" validate:"required"`
	Position      string            `json:"position"`
	Email         string            `json:"email" validate:"required"`
	ContactNumber string            `json:"contactNumber"`
	ProgramID     string            `json:"programId"`
	ProgramName   string            `json:"programName"`
	Learners      models.FlexString `json:"learners"`
	PerLearner    models.FlexString `json:"perLearner"`
	Total         models.FlexString `json:"total"`
	DeliveryMode  string            `json:"deliveryMode"`
	Message       string            `json:"message"`
}

// strictFields are additionally required by POST /api/save-quote.
type strictFields struct {
	ProgramID string `json:"programId" validate:"required,ne=GENERAL_INQUIRY"`
	Learners  string `json:"learners" validate:"required"`
}

type submitResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RecordID string `json:"recordId"`
}

func (req *submitRequest) normalize() {
	req.Company = htmlsanitize.PlainText(req.Company)
	req.FullName = htmlsanitize.PlainText(req.FullName)
	req.Position = htmlsanitize.PlainText(req.Position)
	req.Email = strings.TrimSpace(req.Email)
	req.ContactNumber = htmlsanitize.PlainText(req.ContactNumber)
	req.ProgramID = strings.TrimSpace(req.ProgramID)
	req.DeliveryMode = htmlsanitize.PlainText(req.DeliveryMode)
	req.Message = htmlsanitize.PlainText(req.Message)
	req.Learners = models.FlexString(strings.TrimSpace(string(req.Learners)))
}

// isQuote reports whether the submission names a programme. Everything else
// is a general inquiry.
func (req *submitRequest) isQuote() bool {
	return req.ProgramID != "" && req.ProgramID != models.GeneralInquiryID
}

var errLearnersNotNumber = errors.New("learners must be a whole number")

func (req *submitRequest) learnerCount() (int, error) {
	n, err := strconv.Atoi(string(req.Learners))
	if err != nil {
		// Some clients send 10.0.
		f, ferr := strconv.ParseFloat(string(req.Learners), 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, errLearnersNotNumber
		}
		n = int(f)
	}
	return n, nil
}

// Submit handles POST /api/submit-quote. The body is either a quote request
// (programId names a catalogue programme) or a general inquiry.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

// Save handles POST /api/save-quote, which only accepts complete quotes.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, strict bool) {
	body := r.Body
	if h.Config.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.Config.MaxBodyBytes)
	}
	var req submitRequest
	if err := render.DecodeJSON(body, &req); err != nil {
		h.Log.Info("quote: bad request body", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}
	req.normalize()

	if err := h.validate.Struct(req); err != nil {
		h.Log.Info("quote: missing required fields", zap.Strings("fields", inputval.Fields(err)))
		if strict {
			respond.Error(w, r, http.StatusBadRequest, msgMissingStrict)
		} else {
			respond.Error(w, r, http.StatusBadRequest, msgMissingContact)
		}
		return
	}
	if strict {
		if err := h.validate.Struct(strictFields{ProgramID: req.ProgramID, Learners: string(req.Learners)}); err != nil {
			h.Log.Info("quote: missing required fields", zap.Strings("fields", inputval.Fields(err)))
			respond.Error(w, r, http.StatusBadRequest, msgMissingStrict)
			return
		}
	}

	// The write and the notifications finish even if the client goes away.
	ctx := context.WithoutCancel(r.Context())
	if req.isQuote() {
		h.submitQuote(ctx, w, r, req, strict)
		return
	}
	h.submitInquiry(ctx, w, r, req)
}

func (h *Handler) submitQuote(ctx context.Context, w http.ResponseWriter, r *http.Request, req submitRequest, strict bool) {
	p, ok := catalogue.BySlug(req.ProgramID)
	if !ok {
		respond.Error(w, r, http.StatusBadRequest, msgUnknownProgramme)
		return
	}
	n, err := req.learnerCount()
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	est, err := catalogue.Quote(p, n)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.checkClientPrice(req, est)

	rec := models.QuoteRecord{
		Type:          models.RecordTypeQuote,
		Company:       orNA(req.Company),
		FullName:      req.FullName,
		Position:      orNA(req.Position),
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		ProgramID:     est.ProgramID,
		ProgramName:   est.ProgramName,
		Learners:      est.Learners,
		PerLearner:    est.PerLearner,
		Total:         est.Total,
		DeliveryMode:  req.DeliveryMode,
		CreatedAt:     h.Now().UTC(),
	}

	path := submissionstore.CollectionPath(h.Config.TenantID, models.CollectionQuotes)
	id, err := h.persist(ctx, path, rec)
	if err != nil {
		h.Log.Error("quote: save failed", zap.String("collection", path), zap.Error(err))
		if strict {
			respond.ErrorDetails(w, r, http.StatusInternalServerError, msgSaveFailed, err.Error())
		} else {
			respond.ErrorDetails(w, r, http.StatusInternalServerError, msgFailed, err.Error())
		}
		return
	}
	h.Log.Info("quote saved",
		zap.String("record_id", id),
		zap.String("program_id", rec.ProgramID),
		zap.Int("learners", rec.Learners),
		zap.Int64("total", rec.Total))

	h.notifyQuote(ctx, path, id, rec)

	msg := msgQuoteOK
	if strict {
		msg = msgStrictQuoteOK
	}
	respond.JSON(w, r, http.StatusOK, submitResponse{Success: true, Message: msg, RecordID: id})
}

func (h *Handler) submitInquiry(ctx context.Context, w http.ResponseWriter, r *http.Request, req submitRequest) {
	rec := models.InquiryRecord{
		Type:      models.RecordTypeInquiry,
		FullName:  req.FullName,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: h.Now().UTC(),
	}

	path := submissionstore.CollectionPath(h.Config.TenantID, models.CollectionInquiries)
	id, err := h.persist(ctx, path, rec)
	if err != nil {
		h.Log.Error("inquiry: save failed", zap.String("collection", path), zap.Error(err))
		respond.ErrorDetails(w, r, http.StatusInternalServerError, msgFailed, err.Error())
		return
	}
	h.Log.Info("inquiry saved", zap.String("record_id", id))

	h.notifyInquiry(ctx, path, id, rec)

	respond.JSON(w, r, http.StatusOK, submitResponse{Success: true, Message: msgInquiryOK, RecordID: id})
}

// persist writes doc and returns its id. Without a store the id is
// generated locally so callers still get a reference.
func (h *Handler) persist(ctx context.Context, path string, doc any) (string, error) {
	if h.Store == nil {
		id := uuid.NewString()
		h.Log.Warn("document store not configured; record not persisted",
			zap.String("collection", path),
			zap.String("record_id", id))
		return id, nil
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.DBWrite(), h.Log, "save "+path)
	defer cancel()
	id, err := h.Store.Add(ctx, path, doc)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", path, err)
	}
	return id, nil
}

// checkClientPrice logs when the browser's figures disagree with the
// catalogue. The stored record always uses the catalogue price.
func (h *Handler) checkClientPrice(req submitRequest, est catalogue.Estimate) {
	if req.Total == "" && req.PerLearner == "" {
		return
	}
	total, terr := strconv.ParseFloat(string(req.Total), 64)
	unit, uerr := strconv.ParseFloat(string(req.PerLearner), 64)
	if terr == nil && uerr == nil && int64(total) == est.Total && int64(unit) == est.PerLearner {
		return
	}
	h.Log.Warn("quote: client price differs from catalogue",
		zap.String("program_id", est.ProgramID),
		zap.String("client_per_learner", string(req.PerLearner)),
		zap.String("client_total", string(req.Total)),
		zap.Int64("per_learner", est.PerLearner),
		zap.Int64("total", est.Total))
}

func (h *Handler) notifyQuote(ctx context.Context, path, id string, rec models.QuoteRecord) {
	if h.Mailer == nil {
		h.Log.Warn("email not configured; skipping quote notifications", zap.String("record_id", id))
		return
	}
	data := mailer.QuoteMailData{
		Site:          h.Config.Site,
		SubmittedAt:   rec.CreatedAt,
		Reference:     path + "/" + id,
		FullName:      rec.FullName,
		Company:       rec.Company,
		Position:      rec.Position,
		Email:         rec.Email,
		ContactNumber: rec.ContactNumber,
		ProgramName:   rec.ProgramName,
		DeliveryMode:  rec.DeliveryMode,
		Learners:      rec.Learners,
		PerLearner:    rec.PerLearner,
		Total:         rec.Total,
	}
	notify := h.Mailer.NotifyAddress()

	admin := mailer.BuildQuoteAdminEmail(data)
	admin.To = notify
	admin.ReplyTo = rec.Email
	if h.Mailer.Deliver(ctx, admin) {
		h.Log.Info("quote notification sent", zap.String("to", notify), zap.String("record_id", id))
	}

	confirm := mailer.BuildQuoteConfirmationEmail(data)
	confirm.To = rec.Email
	confirm.ReplyTo = notify
	if h.Mailer.Deliver(ctx, confirm) {
		h.Log.Info("quote confirmation sent", zap.String("to", rec.Email), zap.String("record_id", id))
	}
}

func (h *Handler) notifyInquiry(ctx context.Context, path, id string, rec models.InquiryRecord) {
	if h.Mailer == nil {
		h.Log.Warn("email not configured; skipping inquiry notifications", zap.String("record_id", id))
		return
	}
	notify := h.Mailer.NotifyAddress()
	data := mailer.InquiryMailData{
		Site:           h.Config.Site,
		SubmittedAt:    rec.CreatedAt,
		Reference:      path + "/" + id,
		FullName:       rec.FullName,
		Email:          rec.Email,
		Message:        rec.Message,
		ContactAddress: notify,
	}

	admin := mailer.BuildInquiryAdminEmail(data)
	admin.To = notify
	admin.ReplyTo = rec.Email
	if h.Mailer.Deliver(ctx, admin) {
		h.Log.Info("inquiry notification sent", zap.String("to", notify), zap.String("record_id", id))
	}

	confirm := mailer.BuildInquiryConfirmationEmail(data)
	confirm.To = rec.Email
	confirm.ReplyTo = notify
	if h.Mailer.Deliver(ctx, confirm) {
		h.Log.Info("inquiry confirmation sent", zap.String("to", rec.Email), zap.String("record_id", id))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
