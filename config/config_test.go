package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GO_ENV", "MONGODB_URI", "MONGO_DB",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "SUBMIT_RATE_LIMIT",
		"MAIL_SERVER", "MAIL_PORT", "MAIL_USERNAME", "MAIL_PASSWORD",
		"ADMIN_EMAIL", "SYSTEM_EMAIL", "JWT_SECRET", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "disaster_alert_db", cfg.MongoDB)
	assert.Empty(t, cfg.RedisAddress)
	assert.Equal(t, 20, cfg.SubmitRateLimit)
	assert.Equal(t, "smtp.gmail.com", cfg.MailServer)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, cfg.SystemEmail, cfg.AdminEmail)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_CustomEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "disasters")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("SUBMIT_RATE_LIMIT", "5")
	t.Setenv("MAIL_SERVER", "mail.internal")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("SYSTEM_EMAIL", "noreply@example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "disasters", cfg.MongoDB)
	assert.Equal(t, "cache:6379", cfg.RedisAddress)
	assert.Equal(t, 5, cfg.SubmitRateLimit)
	assert.Equal(t, "mail.internal", cfg.MailServer)
	assert.Equal(t, 2525, cfg.MailPort)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, "noreply@example.com", cfg.SystemEmail)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_PORT", "not-a-number")
	t.Setenv("SUBMIT_RATE_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, 20, cfg.SubmitRateLimit)
}
