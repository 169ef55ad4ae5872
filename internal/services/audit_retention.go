package services

import (
	"context"
	"log/slog"
	"time"

	"credit-backoffice/internal/config"
)

// RunAuditRetention purges expired audit entries once at start and then every
// PurgeInterval until ctx is cancelled. Zero retention disables it.
func RunAuditRetention(ctx context.Context, audit AuditServiceInterface, cfg config.AuditConfig, logger *slog.Logger) {
	if cfg.Retention <= 0 || cfg.PurgeInterval <= 0 {
		logger.Info("Audit retention disabled")
		return
	}

	purge := func() {
		deleted, err := audit.PurgeExpired(ctx, cfg.Retention)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Audit retention purge failed", "error", err)
			}
			return
		}
		if deleted > 0 {
			logger.Info("Purged expired audit logs", "deleted", deleted, "retention", cfg.Retention.String())
		}
	}

	purge()

	ticker := time.NewTicker(cfg.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// select picks randomly when both channels are ready
			if ctx.Err() != nil {
				return
			}
			purge()
		}
	}
}
