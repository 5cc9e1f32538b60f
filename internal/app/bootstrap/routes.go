// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	dashboardfeature "github.com/mnogodumalon/kurs56/internal/app/features/dashboard"
	errorsfeature "github.com/mnogodumalon/kurs56/internal/app/features/errors"
	healthfeature "github.com/mnogodumalon/kurs56/internal/app/features/health"
	homefeature "github.com/mnogodumalon/kurs56/internal/app/features/home"
	"github.com/mnogodumalon/kurs56/internal/app/system/prefs"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// Kurs56 initializes the template engine and the preference cookie store,
// then mounts the landing page, the health endpoint, static assets, and the
// reporting dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	prefs.InitStore(appCfg.SessionKey, secure, logger)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Reporting dashboard
	dashboardHandler := dashboardfeature.NewHandler(deps.Model, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
