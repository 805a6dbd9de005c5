// Package config loads runtime configuration from the environment, honoring
// a local .env file when present.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment. Missing values fall back to
// development defaults; JWT_SECRET has no safe default and must be set in
// production.
func Load() *Config {
	loadDotenv()

	ttlHours := 24 * 30
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	return &Config{
		Port:      envOr("PORT", "3000"),
		DBPath:    envOr("DB_PATH", filepath.Join("data", "badger")),
		JWTSecret: envOr("JWT_SECRET", "dev-secret"),
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			return
		}
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
