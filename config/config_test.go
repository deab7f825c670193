package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// setRequiredEnv exports the values LoadConfig treats as fatal when missing.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "http://localhost:8080/oauth2callback")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
}

func TestLoadConfig_FromEnvironmentOnly(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CLIENT_ORIGIN", "http://localhost:4321")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.Equal(t, "http://localhost:4321", AppConfig.ClientOrigin)
	assert.Equal(t, "test-secret", AppConfig.SessionSecret)
	assert.Equal(t, "client-id", AppConfig.GoogleClientID)
	assert.Equal(t, "client-secret", AppConfig.GoogleClientSecret)
	assert.Equal(t, "http://localhost:8080/oauth2callback", AppConfig.GoogleRedirectURI)
	assert.Equal(t, "gemini-key", AppConfig.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", AppConfig.GeminiModel)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	LoadConfig()

	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "gemini-1.5-flash", AppConfig.GeminiModel)
	assert.Equal(t, "primary", AppConfig.CalendarID)
	assert.Equal(t, 30, AppConfig.SlotMinutes)
	assert.Empty(t, AppConfig.RedisAddr)
	// No CLIENT_ORIGIN exported: the development front-end origin applies.
	assert.Equal(t, "http://localhost:5173", AppConfig.ClientOrigin)
	assert.False(t, IsProduction())
}

func TestLoadConfig_ProductionClientOrigin(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")

	LoadConfig()

	assert.True(t, IsProduction())
	assert.Equal(t, "https://regenmedai.com", AppConfig.ClientOrigin)
}
