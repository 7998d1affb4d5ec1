package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Token TTL bounds in seconds; out-of-range values fall back to the default.
const (
	minTokenTTL     = 60
	maxTokenTTL     = 7 * 86400
	defaultTokenTTL = 600
)

// Config holds process-wide settings, read once at startup and immutable after.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	SecretKey   string
	TokenTTL    time.Duration
	BcryptCost  int
	LogLevel    string
}

var (
	ErrNoSecretKey   = errors.New("SECRET_KEY is not set")
	ErrNoDatabaseURL = errors.New("DATABASE_URL is not set")
)

// Load reads environment variables, optionally from a .env file if present.
// The server must not start without a signing secret or a database DSN, so
// Load returns an error when either is absent.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":80"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		TokenTTL:    time.Duration(clampInt(getEnvInt("DEFAULT_TOKEN_EXPIRY", defaultTokenTTL), minTokenTTL, maxTokenTTL, defaultTokenTTL)) * time.Second,
		BcryptCost:  clampInt(getEnvInt("BCRYPT_COST", bcrypt.DefaultCost), bcrypt.MinCost, bcrypt.MaxCost, bcrypt.DefaultCost),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if cfg.SecretKey == "" {
		return Config{}, ErrNoSecretKey
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrNoDatabaseURL
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func clampInt(n, min, max, def int) int {
	if n < min || n > max {
		return def
	}
	return n
}
