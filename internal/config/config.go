package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	JWTSecret     string
	CORSOrigin    string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment. A missing JWT secret
// is a startup invariant violation: every token-issuing and
// token-verifying path depends on it, so the process refuses to start.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskdeck?parseTime=true"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:5173"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
