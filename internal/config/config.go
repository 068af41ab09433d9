package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Geocode  GeocodeConfig  `mapstructure:"geocode"  validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload"   validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigin is the SPA origin permitted by the CORS middleware.
	// Credentials are allowed, so a wildcard is never used.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`

	// StaticDir is the directory holding the built front-end bundle
	// served as a catch-all fallback. Empty disables static hosting.
	StaticDir string `mapstructure:"static_dir"`
}

// DatabaseConfig contains the MongoDB connection settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains authentication and token settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// GeocodeConfig contains settings for the external geocoding service.
type GeocodeConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`

	// Endpoint overrides the geocoding API URL; used in tests.
	Endpoint string `mapstructure:"endpoint"`

	// TimeoutSeconds bounds each geocoding call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// UploadConfig contains settings for stored image uploads.
type UploadConfig struct {
	// Dir is the directory uploaded images are written to and served from.
	Dir string `mapstructure:"dir" validate:"required"`

	// MaxBytes caps the size of an accepted image upload.
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,gt=0"`
}
