package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Greater(t, cfg.TokenTTL, time.Duration(0))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_PATH", "/tmp/board-db")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TOKEN_TTL_HOURS", "2")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/tmp/board-db", cfg.DBPath)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SOME_KEY", "set")
	assert.Equal(t, "set", envOr("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", envOr("SOME_OTHER_KEY", "fallback"))
}
