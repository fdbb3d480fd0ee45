package config_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/crmaster/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, "admin@test.com", cfg.Email.DefaultFrom)
	assert.Equal(t, "/api/leads", cfg.Guard.Fallback)
	assert.Equal(t, "/api/auth/login", cfg.Guard.LoginURL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 25, cfg.Email.SMTP.Port)
	assert.Equal(t, "20-M", cfg.RateLimit.Rate)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CRM_DEFAULT_FROM_EMAIL", "crm@example.com")
	t.Setenv("CRM_GUARD_FALLBACK", "/dashboard/")
	t.Setenv("SMTP_HOST", "mail.internal")
	t.Setenv("DB_NAME", "crm_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "crm@example.com", cfg.Email.DefaultFrom)
	assert.Equal(t, "/dashboard/", cfg.Guard.Fallback)
	assert.Equal(t, "mail.internal", cfg.Email.SMTP.Host)
	assert.Contains(t, cfg.Database.DSN(), "dbname=crm_test")
	assert.Contains(t, cfg.Database.URL(), "/crm_test?")
}

func TestValidate(t *testing.T) {
	t.Run("sendgrid needs a key", func(t *testing.T) {
		cfg := &config.Config{Email: config.EmailOptions{Provider: "sendgrid", DefaultFrom: "a@b.c"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Email: config.EmailOptions{Provider: "pigeon", DefaultFrom: "a@b.c"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty sender", func(t *testing.T) {
		cfg := &config.Config{Email: config.EmailOptions{Provider: "smtp"}}
		assert.Error(t, cfg.Validate())
	})

	valid := func(secret string) *config.Config {
		return &config.Config{
			Email: config.EmailOptions{Provider: "smtp", DefaultFrom: "a@b.c"},
			JWT:   config.JWTOptions{Secret: secret},
		}
	}

	t.Run("placeholder jwt secret", func(t *testing.T) {
		assert.ErrorContains(t, valid(config.DefaultJWTSecret).Validate(), "JWT_SECRET")
	})

	t.Run("empty jwt secret", func(t *testing.T) {
		assert.ErrorContains(t, valid("").Validate(), "JWT_SECRET")
	})

	t.Run("complete config", func(t *testing.T) {
		assert.NoError(t, valid("s3cr3t").Validate())
	})
}

func TestLoadRejectsPlaceholderSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", config.DefaultJWTSecret)

	_, err := config.Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadDatabaseIgnoresServerSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", config.DefaultJWTSecret)
	t.Setenv("DB_NAME", "crm_cli")

	db, err := config.LoadDatabase()
	require.NoError(t, err)
	assert.Contains(t, db.DSN(), "dbname=crm_cli")
}
