// internal/app/bootstrap/routes.go
package bootstrap

import (
	"cmp"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	applicationsfeature "github.com/empoderata/academy/internal/app/features/applications"
	healthfeature "github.com/empoderata/academy/internal/app/features/health"
	programmesfeature "github.com/empoderata/academy/internal/app/features/programmes"
	quotesfeature "github.com/empoderata/academy/internal/app/features/quotes"
	"github.com/empoderata/academy/internal/app/system/mailer"
	"github.com/empoderata/academy/internal/app/system/ratelimit"
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/empoderata/academy/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// The JSON API lives under /api:
//   - GET  /api/health
//   - GET  /api/programmes, /api/programmes/{slug}, /api/programmes/{slug}/quote
//   - POST /api/submit-quote, /api/save-quote, /api/submit-application
//
// Unsupported methods get 405 {"error":"Method not allowed"}. When
// static_dir is set the built single-page app is served for everything
// outside /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	site := mailer.Site{Name: appCfg.SiteName, URL: appCfg.SiteURL}
	m := buildMailer(appCfg, logger)

	var limiter *ratelimit.Limiter
	if appCfg.RateLimitSubmissions > 0 {
		limiter = ratelimit.New(appCfg.RateLimitSubmissions, appCfg.RateLimitWindow)
		limiter.TrustProxy = appCfg.RateLimitTrustProxy
		logger.Info("submission rate limiting enabled",
			zap.Int("limit", appCfg.RateLimitSubmissions),
			zap.Duration("window", appCfg.RateLimitWindow),
			zap.Bool("trust_proxy", appCfg.RateLimitTrustProxy))
	}
	setSubmissionLimiter(limiter)

	healthHandler := healthfeature.NewHandler(healthfeature.Secrets{
		SendGridAPIKey:      appCfg.SendGridAPIKey != "",
		SendGridFrom:        appCfg.EmailFrom,
		FirebaseProjectID:   appCfg.FirebaseProjectID != "",
		FirebaseClientEmail: appCfg.FirebaseClientEmail != "",
		FirebasePrivateKey:  appCfg.FirebasePrivateKey != "",
	}, logger)

	programmesHandler := programmesfeature.NewHandler(logger)

	quotesHandler := quotesfeature.NewHandler(deps.Submissions, m, quotesfeature.Config{
		TenantID:     appCfg.AppID,
		Site:         site,
		MaxBodyBytes: appCfg.MaxBodyBytes,
	}, logger)

	applicationsHandler := applicationsfeature.NewHandler(m, applicationsfeature.Config{
		Site:               site,
		MaxAttachments:     appCfg.MaxAttachments,
		MaxAttachmentBytes: appCfg.MaxAttachmentBytes,
		MaxBodyBytes:       appCfg.MaxBodyBytes,
	}, logger)

	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.NotFound(respond.NotFound)
		api.MethodNotAllowed(respond.MethodNotAllowed)

		api.Mount("/health", healthfeature.Routes(healthHandler))
		api.Mount("/programmes", programmesfeature.Routes(programmesHandler))

		// Form submissions share the optional per-IP limiter.
		api.Group(func(forms chi.Router) {
			forms.Use(ratelimit.Middleware(limiter, logger))
			forms.Mount("/submit-quote", quotesfeature.Routes(quotesHandler))
			forms.Mount("/save-quote", quotesfeature.SaveRoutes(quotesHandler))
			forms.Mount("/submit-application", applicationsfeature.Routes(applicationsHandler))
		})
	})

	if appCfg.StaticDir != "" {
		r.Handle("/assets/*", fileserver.Handler("/assets", filepath.Join(appCfg.StaticDir, "assets")))
		r.NotFound(spaHandler(appCfg.StaticDir))
		logger.Info("serving single-page app", zap.String("dir", appCfg.StaticDir))
	}

	return r, nil
}

// buildMailer returns nil when no API key is configured; handlers then
// skip sending.
func buildMailer(appCfg AppConfig, logger *zap.Logger) *mailer.Mailer {
	if appCfg.SendGridAPIKey == "" {
		return nil
	}
	return mailer.New(mailer.NewSendGrid(appCfg.SendGridAPIKey), mailer.Config{
		From:     cmp.Or(appCfg.EmailFrom, DefaultEmailFrom),
		FromName: appCfg.SiteName,
		Notify:   appCfg.NotificationEmail,
		Retry: mailer.Retry{
			Attempts: appCfg.MailRetryAttempts,
			Backoff:  appCfg.MailRetryBackoff,
		},
		SendTimeout: timeouts.MailSend(),
	}, logger)
}

var (
	limiterMu         sync.Mutex
	submissionLimiter *ratelimit.Limiter
)

// setSubmissionLimiter records the limiter so Shutdown can stop its cleanup
// goroutine. A previously recorded limiter is closed.
func setSubmissionLimiter(l *ratelimit.Limiter) {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	if submissionLimiter != nil && submissionLimiter != l {
		submissionLimiter.Close()
	}
	submissionLimiter = l
}

// closeSubmissionLimiter stops the recorded limiter, if any.
func closeSubmissionLimiter() {
	setSubmissionLimiter(nil)
}
