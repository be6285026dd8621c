// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Store backends accepted by store_backend.
const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
	BackendNone      = "none"
)

// DefaultEmailFrom is the sender used when email_from is not configured.
const DefaultEmailFrom = "info@empoderata.net"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// Values come from environment variables (ACADEMY_*), configuration files,
// or command-line flags and are loaded in LoadConfig. WAFFLE's CoreConfig
// keeps the framework settings (ports, TLS, logging); everything the
// submission service needs lives here.
type AppConfig struct {
	// Document store
	StoreBackend string // "firestore", "mongo" or "none"
	AppID        string // tenant id in artifacts/{AppID}/public/data/...

	FirebaseProjectID   string
	FirebaseClientEmail string
	FirebasePrivateKey  string // PEM, with literal \n sequences already expanded

	MongoURI      string
	MongoDatabase string

	// Email
	SendGridAPIKey    string
	EmailFrom         string // sender address; blank means DefaultEmailFrom
	NotificationEmail string // admin recipient
	MailRetryAttempts int
	MailRetryBackoff  time.Duration

	// Site identity used in mail footers
	SiteName string
	SiteURL  string

	// Request limits
	MaxAttachments     int
	MaxAttachmentBytes int64
	MaxBodyBytes       int64

	// Optional per-IP limit on submission endpoints; 0 disables it.
	RateLimitSubmissions int
	RateLimitWindow      time.Duration
	RateLimitTrustProxy  bool

	// StaticDir, when set, is the built single-page app served at /.
	StaticDir string

	TimeoutDBWrite  time.Duration
	TimeoutMailSend time.Duration
}

// FirebaseConfigured reports whether enough service-account data is present
// to build Firestore credentials.
func (c AppConfig) FirebaseConfigured() bool {
	return c.FirebaseProjectID != "" && c.FirebaseClientEmail != "" && c.FirebasePrivateKey != ""
}
