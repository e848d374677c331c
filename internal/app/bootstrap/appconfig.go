// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body size limits). AppConfig is everything specific
// to this application: database connection details, token signing, the bot
// API key, and the mail provider selection.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token signing configuration
	JWTSecret       string        // HMAC secret for signed bearer tokens (must be strong in production)
	AccessTokenTTL  time.Duration // Access token lifetime
	RefreshTokenTTL time.Duration // Refresh token lifetime

	// Bot polling configuration
	BotAPIKey string // Shared key bots present in X-API-Key

	// Outbound mail configuration
	MailProvider string // "gmail" (credentials from the configurations store) or "resend"
	MailFrom     string // From address for the resend provider
	ResendAPIKey string // API key for the resend provider
}
