package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// MinJWTSecretLen is the smallest signing key accepted for HS512: the key
// must be at least as long as the hash output (64 bytes).
const MinJWTSecretLen = 64

// Config holds application configuration loaded from environment variables
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"local"`
	Port string `env:"PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL" envDefault:"http://localhost:8080/auth/google/callback"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-secret-change-in-production-use-openssl-rand-hex-32"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	SeedDev bool `env:"SEED_DEV_DATA" envDefault:"false"`
}

// Load reads configuration from the environment (and an optional .env file).
// A missing or short JWT secret is rejected here: every token operation after
// startup would be unsafe with it, so the process must not come up.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes for HS512, got %d", MinJWTSecretLen, len(cfg.JWTSecret))
	}

	return cfg, nil
}

// Deployed reports whether the active profile is a non-local deployment.
// Gates the Secure flag on auth cookies.
func (c *Config) Deployed() bool {
	return c.Env == "dev" || c.Env == "prod"
}
