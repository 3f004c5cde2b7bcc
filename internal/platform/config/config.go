// Package config loads process-wide settings from the environment.
// Values are read once at startup and passed into constructors explicitly.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	// EnvProduction is the value of APP_ENV that enables strict checks.
	EnvProduction = "production"

	// DevJWTSecret is the signing secret used when JWT_SECRET is unset outside production.
	DevJWTSecret = "dev-secret-change-in-production"

	defaultPort          = "8080"
	defaultJWTExpiration = 24 * time.Hour
)

// ErrMissingJWTSecret is returned by Validate when no signing secret is set in production.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Config holds the application settings.
type Config struct {
	Env  string
	Port string

	JWTSecret     string
	JWTExpiration time.Duration
	BcryptCost    int

	CORSOrigins []string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads a .env file if present and builds a Config from the environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() Config {
	return Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", defaultPort),
		JWTSecret:     getEnv("JWT_SECRET", DevJWTSecret),
		JWTExpiration: getDuration("JWT_EXPIRATION", defaultJWTExpiration),
		BcryptCost:    getInt("BCRYPT_COST", bcrypt.DefaultCost),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}
}

// Validate reports configuration that must stop the process.
func (c Config) Validate() error {
	if c.Env == EnvProduction && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return ErrMissingJWTSecret
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewLogger builds the slog logger described by LogFormat and LogLevel.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
