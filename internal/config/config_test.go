package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("API_ALLOWED_ORIGINS", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("UPLOAD_SWEEP_GRACE", "")
	t.Setenv("CONTACT_RATE_LIMIT", "")
	t.Setenv("APPLY_RATE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 24*time.Hour, cfg.SweepGrace)
	assert.Equal(t, 5, cfg.ContactLimit)
	assert.Equal(t, 10, cfg.ApplyLimit)
	assert.Contains(t, cfg.DatabaseURL, "host=localhost")
	assert.False(t, cfg.MailEnabled())
	assert.NotNil(t, cfg.Logger)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/jobs")
	t.Setenv("PORT", "9000")
	t.Setenv("API_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("CONTACT_RATE_WINDOW", "10m")
	t.Setenv("SMTP_HOST", "smtp.example")
	t.Setenv("NOTIFY_EMAIL", "hr@example.com")
	t.Setenv("SEED_DEMO_DATA", "TRUE")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5432/jobs", cfg.DatabaseURL)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, 10*time.Minute, cfg.ContactWindow)
	assert.True(t, cfg.MailEnabled())
	assert.True(t, cfg.SeedDemoData)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT", "-5s")

	assert.Equal(t, 587, intOrDefault("SMTP_PORT", 587))
	assert.Equal(t, 10*time.Second, durationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second))
}
