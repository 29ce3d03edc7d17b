// Package config loads runtime settings from environment variables,
// with an optional .env overlay for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all externally supplied settings.
//
// Fields:
//   - Port: HTTP listen port.
//   - DB*: PostgreSQL connection settings (pgx).
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256).
//   - TokenTTL: bearer token lifetime.
//   - StripeSecretKey: payment-gateway API key.
type Config struct {
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	TokenTTL        time.Duration
	StripeSecretKey string
}

// Load reads configuration from the environment, falling back to local
// development defaults. A .env file in the working directory, if present,
// is loaded first without overriding already-set variables.
func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "5000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "dancextreme"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "dev-only-secret"),
		TokenTTL:        getEnvHours("TOKEN_TTL_HOURS", 3),
		StripeSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
	}
}

// DSN builds a libpq-compatible connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvHours(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}
