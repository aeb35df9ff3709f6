package config

import (
	"fmt"
	"os"
	"time"

	"github.com/guardiao/gestao/internal/models"
)

type Config struct {
	DatabaseURL   string
	HTTPAddr      string
	Env           string // dev|prod
	LogLevel      string
	SentryDSN     string
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminName     string
	AdminPassword string
	Location      *time.Location
	Deltas        models.DeltaTable
}

func Load() (*Config, error) {
	tz := getenv("TZ", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	ttl, err := parseTTL(getenv("TOKEN_TTL", "8h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		DatabaseURL:   mustEnv("DATABASE_URL"),
		HTTPAddr:      getenv("HTTP_ADDR", ":5080"),
		Env:           getenv("ENV", "dev"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		JWTSecret:     mustEnv("JWT_SECRET"),
		JWTIssuer:     getenv("JWT_ISSUER", "GuardiaoGestao"),
		JWTAudience:   getenv("JWT_AUDIENCE", "GuardiaoGestaoClients"),
		TokenTTL:      ttl,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminName:     getenv("ADMIN_NAME", "Administrador"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Location:      loc,
		Deltas:        models.DefaultDeltas(),
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET: need at least 16 characters")
	}
	return cfg, nil
}

// Dev reports whether internal error details may reach clients.
func (c *Config) Dev() bool { return c.Env != "prod" }

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseTTL(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
