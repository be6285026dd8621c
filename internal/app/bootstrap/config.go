// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/empoderata/academy/internal/app/system/limits"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the academy service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, sendgrid_api_key, etc.
//   - Environment variables: ACADEMY_STORE_BACKEND, ACADEMY_SENDGRID_API_KEY, etc.
//   - Command-line flags: --store_backend, --sendgrid_api_key, etc.
var appConfigKeys = []config.AppKey{
	// Document store
	{Name: "store_backend", Default: BackendFirestore, Desc: "Submission store: 'firestore', 'mongo' or 'none'"},
	{Name: "app_id", Default: "empodera", Desc: "Tenant id used in the collection path"},
	{Name: "firebase_project_id", Default: "", Desc: "Firebase project id"},
	{Name: "firebase_client_email", Default: "", Desc: "Firebase service account email"},
	{Name: "firebase_private_key", Default: "", Desc: "Firebase service account private key (PEM, \\n escapes allowed)"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend)"},
	{Name: "mongo_database", Default: "empodera", Desc: "MongoDB database name (mongo backend)"},

	// Email
	{Name: "sendgrid_api_key", Default: "", Desc: "SendGrid API key; blank disables email"},
	{Name: "email_from", Default: "", Desc: "Sender address (blank uses " + DefaultEmailFrom + ")"},
	{Name: "notification_email", Default: "info@empoderata.net", Desc: "Admin notification recipient"},
	{Name: "mail_retry_attempts", Default: 3, Desc: "Send attempts per email"},
	{Name: "mail_retry_backoff", Default: "200ms", Desc: "Linear backoff base between send attempts"},

	// Site identity
	{Name: "site_name", Default: "Empodera Training Academy", Desc: "Site name used in emails"},
	{Name: "site_url", Default: "https://empoderata.net", Desc: "Site URL used in emails"},

	// Request limits
	{Name: "max_attachments", Default: limits.MaxAttachments, Desc: "Maximum attachments per application"},
	{Name: "max_attachment_bytes", Default: limits.MaxAttachmentSize, Desc: "Maximum decoded size of one attachment"},
	{Name: "max_body_bytes", Default: limits.MaxSubmissionBody, Desc: "Maximum JSON body size for submissions"},
	{Name: "rate_limit_submissions", Default: 0, Desc: "Submissions per IP per window (0 disables)"},
	{Name: "rate_limit_window", Default: "1m", Desc: "Rate limit window"},
	{Name: "rate_limit_trust_proxy", Default: false, Desc: "Key the rate limit on X-Forwarded-For (only behind a trusted proxy)"},

	// Static site
	{Name: "static_dir", Default: "", Desc: "Directory of the built single-page app (blank disables)"},

	// Timeouts
	{Name: "timeout_db_write", Default: "10s", Desc: "Timeout for one submission write"},
	{Name: "timeout_mail_send", Default: "15s", Desc: "Timeout for delivering one email including retries"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables (WAFFLE_* for core, ACADEMY_* for app) and flags
// with precedence flags > env > files > defaults. Legacy variable names are
// applied afterwards for any value still empty.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ACADEMY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend:        strings.ToLower(strings.TrimSpace(appValues.String("store_backend"))),
		AppID:               appValues.String("app_id"),
		FirebaseProjectID:   appValues.String("firebase_project_id"),
		FirebaseClientEmail: appValues.String("firebase_client_email"),
		FirebasePrivateKey:  appValues.String("firebase_private_key"),
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),

		SendGridAPIKey:    appValues.String("sendgrid_api_key"),
		EmailFrom:         appValues.String("email_from"),
		NotificationEmail: appValues.String("notification_email"),
		MailRetryAttempts: appValues.Int("mail_retry_attempts"),
		MailRetryBackoff:  appValues.Duration("mail_retry_backoff", 200*time.Millisecond),

		SiteName: appValues.String("site_name"),
		SiteURL:  appValues.String("site_url"),

		MaxAttachments:       appValues.Int("max_attachments"),
		MaxAttachmentBytes:   int64(appValues.Int("max_attachment_bytes")),
		MaxBodyBytes:         int64(appValues.Int("max_body_bytes")),
		RateLimitSubmissions: appValues.Int("rate_limit_submissions"),
		RateLimitWindow:      appValues.Duration("rate_limit_window", time.Minute),
		RateLimitTrustProxy:  appValues.Bool("rate_limit_trust_proxy"),

		StaticDir: appValues.String("static_dir"),

		TimeoutDBWrite:  appValues.Duration("timeout_db_write", 10*time.Second),
		TimeoutMailSend: appValues.Duration("timeout_mail_send", 15*time.Second),
	}

	applyLegacyEnv(&appCfg, os.Getenv, logger)
	appCfg.FirebasePrivateKey = expandKeyNewlines(appCfg.FirebasePrivateKey)

	return coreCfg, appCfg, nil
}

// applyLegacyEnv fills empty values from the variable names used before
// the ACADEMY_ prefix existed. Values that only have a built-in default
// (recipient, tenant id) are also overridden when a legacy variable
// is set, since the default would otherwise always win.
func applyLegacyEnv(cfg *AppConfig, getenv func(string) string, logger *zap.Logger) {
	fill := func(dst *string, overrideDefault string, names ...string) {
		if *dst != "" && *dst != overrideDefault {
			return
		}
		for _, n := range names {
			if v := strings.TrimSpace(getenv(n)); v != "" {
				logger.Debug("using legacy environment variable", zap.String("name", n))
				*dst = v
				return
			}
		}
	}

	fill(&cfg.FirebaseProjectID, "", "FIREBASE_PROJECT_ID")
	fill(&cfg.FirebaseClientEmail, "", "FIREBASE_CLIENT_EMAIL")
	fill(&cfg.FirebasePrivateKey, "", "FIREBASE_PRIVATE_KEY")
	fill(&cfg.SendGridAPIKey, "", "SENDGRID_API_KEY")
	fill(&cfg.AppID, "empodera", "FIREBASE_APP_ID", "APP_ID")
	fill(&cfg.EmailFrom, "", "EMAIL_FROM", "SENDGRID_FROM")
	fill(&cfg.NotificationEmail, "info@empoderata.net", "NOTIFICATION_EMAIL", "SENDGRID_TO")
}

// expandKeyNewlines turns literal "\n" sequences into newlines. Hosting
// dashboards store the PEM key on one line.
func expandKeyNewlines(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// ValidateConfig performs app-specific config validation and aborts startup
// on an unusable configuration. Missing credentials are not errors: the
// service degrades to skipping persistence or email.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case BackendFirestore, BackendNone:
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required when store_backend is %q", BackendMongo)
		}
	default:
		return fmt.Errorf("unknown store_backend %q (want %s, %s or %s)",
			appCfg.StoreBackend, BackendFirestore, BackendMongo, BackendNone)
	}

	if strings.TrimSpace(appCfg.AppID) == "" {
		return fmt.Errorf("app_id must not be empty")
	}
	if appCfg.MailRetryAttempts < 1 {
		return fmt.Errorf("mail_retry_attempts must be at least 1, got %d", appCfg.MailRetryAttempts)
	}
	if appCfg.MailRetryBackoff < 0 {
		return fmt.Errorf("mail_retry_backoff must not be negative")
	}
	if appCfg.RateLimitSubmissions > 0 && appCfg.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be positive when rate limiting is enabled")
	}
	return nil
}
