// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/empoderata/academy/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after the store is connected and
// before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		DBWrite:  appCfg.TimeoutDBWrite,
		MailSend: appCfg.TimeoutMailSend,
	})
	cur := timeouts.Current()

	logger.Info("academy starting",
		zap.String("store_backend", appCfg.StoreBackend),
		zap.Bool("store_ready", deps.Submissions != nil),
		zap.Bool("email_configured", appCfg.SendGridAPIKey != ""),
		zap.String("app_id", appCfg.AppID),
		zap.Duration("timeout_db_write", cur.DBWrite),
		zap.Duration("timeout_mail_send", cur.MailSend))

	if appCfg.SendGridAPIKey == "" {
		logger.Warn("SendGrid API key not configured; email will be skipped")
	}
	return nil
}
