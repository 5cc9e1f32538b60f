// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP ports,
// TLS, logging level and format, and request limits. AppConfig is where
// everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Preference cookie configuration
	SessionKey string // Secret key for signing preference cookies

	// Dashboard configuration
	UpcomingLimit   int           // Default number of upcoming courses on the dashboard
	InitialLoad     bool          // Load the dashboard snapshot once at startup
	RefreshInterval time.Duration // Background reload interval (0 disables the worker)

	BaseURL string // e.g., "https://kurs56.example.com" or "http://localhost:3000"
}
