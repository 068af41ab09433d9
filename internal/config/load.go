package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// PLACEZ_ prefix with underscores for nesting (e.g. PLACEZ_AUTH_JWT_SECRET)
// and take precedence over file values.
// Returns a populated, validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PLACEZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly so AutomaticEnv
	// picks them up during Unmarshal.
	for _, key := range []string{"database.uri", "auth.jwt_secret", "geocode.api_key", "geocode.endpoint"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// The config file is optional; environment variables alone are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for settings that have a sensible
// out-of-the-box value. Secrets and external keys have no default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("server.static_dir", "build")
	v.SetDefault("database.name", "placez")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("geocode.timeout_seconds", 10)
	v.SetDefault("upload.dir", "uploads/images")
	v.SetDefault("upload.max_bytes", int64(5<<20))
}
