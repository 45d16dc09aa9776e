package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("EMAIL_FROM", "noreply@example.com")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("OTP_JWT_SECRET", "signing-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, EnvLocal, cfg.AppEnv)
	assert.Equal(t, "Tasker Pro", cfg.AppName)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, 15*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "signing-secret", cfg.OTP.JWTSecret)
}

func TestLoad_AllowedOriginsSplit(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_UnsetSecret_ReturnsError(t *testing.T) {
	setRequired(t)
	require.NoError(t, os.Unsetenv("OTP_JWT_SECRET"))

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "required")
}

func TestLoad_EmptySecret_ReturnsError(t *testing.T) {
	setRequired(t)
	t.Setenv("OTP_JWT_SECRET", " ")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "OTP_JWT_SECRET")
}

func TestLoad_MissingSMTPPassword_ReturnsError(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PASS", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "SMTP_PASS")
}

func TestValidate_UnknownEnv(t *testing.T) {
	cfg := validConfig()
	cfg.AppEnv = "staging"
	assert.ErrorContains(t, cfg.Validate(), "APP_ENV")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.SMTP.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "SMTP_PORT")
}

func validConfig() *Config {
	return &Config{
		AppEnv: EnvProd,
		SMTP: SMTP{
			Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "noreply@example.com",
		},
		OTP: OTP{JWTSecret: "s"},
	}
}
