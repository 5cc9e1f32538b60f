// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/mnogodumalon/kurs56/internal/app/resources"
	"github.com/mnogodumalon/kurs56/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// the shared templates and, unless disabled, warms the dashboard with an
// initial snapshot so the first visitor sees data instead of a loading page.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.InitialLoad {
		loadCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
		defer cancel()

		// A failed warm-up is not fatal. The dashboard renders its failed
		// state and the next refresh retries.
		if err := deps.Model.Load(loadCtx); err != nil {
			logger.Warn("initial dashboard load failed", zap.Error(err))
		}
	}

	if deps.Refresher != nil {
		deps.Refresher.Start()
	}

	return nil
}
