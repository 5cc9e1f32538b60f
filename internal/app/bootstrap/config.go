// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Kurs56.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, upcoming_limit, etc.
//   - Environment variables: KURS56_MONGO_URI, KURS56_UPCOMING_LIMIT, etc.
//   - Command-line flags: --mongo_uri, --upcoming_limit, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "kurs56", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Preference cookie signing key (must be strong in production)"},

	{Name: "upcoming_limit", Default: 5, Desc: "Default number of upcoming courses shown on the dashboard"},
	{Name: "initial_load", Default: true, Desc: "Load the dashboard snapshot once at startup"},
	{Name: "refresh_interval", Default: "5m", Desc: "Background dashboard reload interval (e.g., 5m, 30s; 0 disables)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of this service"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, KURS56_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KURS56", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey: appValues.String("session_key"),

		UpcomingLimit:   appValues.Int("upcoming_limit"),
		InitialLoad:     appValues.Bool("initial_load"),
		RefreshInterval: appValues.Duration("refresh_interval", 5*time.Minute),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Kurs56 validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}

	if appCfg.UpcomingLimit < 1 {
		return fmt.Errorf("upcoming_limit must be at least 1, got %d", appCfg.UpcomingLimit)
	}

	return nil
}
