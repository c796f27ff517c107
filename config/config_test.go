package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("ENABLE_DEV_LOGIN", "")
	t.Setenv("GOOGLE_AI_API_KEY", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.EnableDevLogin)
	assert.Empty(t, cfg.GoogleAIAPIKey)
	assert.Equal(t, "gemini", cfg.AIProvider)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("ENABLE_DEV_LOGIN", "true")
	t.Setenv("GOOGLE_AI_API_KEY", "k")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.EnableDevLogin)
	assert.Equal(t, "k", cfg.GoogleAIAPIKey)
}

func TestParseDurationRejectsGarbage(t *testing.T) {
	assert.Equal(t, time.Hour, parseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, parseDuration("-5m", time.Hour))
}
