package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string   `env:"APP_PORT" env-default:"3000"`
	AppEnv         string   `env:"APP_ENV" env-default:"local"`
	AppName        string   `env:"APP_NAME" env-default:"Tasker Pro"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"*" env-separator:","` // CORS allowed origins
	SMTP           SMTP
	OTP            OTP
}

// SMTP holds the mail transport settings. Everything but the display name and
// timeout is required.
type SMTP struct {
	Host     string        `env:"SMTP_HOST" env-required:"true"`
	Port     int           `env:"SMTP_PORT" env-required:"true"`
	Username string        `env:"SMTP_USER" env-required:"true"`
	Password string        `env:"SMTP_PASS" env-required:"true"`
	From     string        `env:"EMAIL_FROM" env-required:"true"`
	FromName string        `env:"SMTP_FROM_NAME"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" env-default:"15s"`
}

// OTP holds the token signing settings.
type OTP struct {
	JWTSecret string `env:"OTP_JWT_SECRET" env-required:"true"`
}

// Load reads all configuration from environment variables. A missing required
// value is returned as an error; callers treat it as fatal.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.AppEnv {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("APP_ENV must be one of %s, %s, %s; got %q", EnvLocal, EnvDev, EnvProd, c.AppEnv)
	}
	// cleanenv only rejects unset variables; an exported-but-empty one gets through.
	for name, v := range map[string]string{
		"EMAIL_FROM":     c.SMTP.From,
		"SMTP_HOST":      c.SMTP.Host,
		"SMTP_USER":      c.SMTP.Username,
		"SMTP_PASS":      c.SMTP.Password,
		"OTP_JWT_SECRET": c.OTP.JWTSecret,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing environment variable: %s", name)
		}
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", c.SMTP.Port)
	}
	return nil
}

// Reminder configures the task-reminder relay. cmd/reminder fills it from
// flags and environment.
type Reminder struct {
	DBPath         string
	Cooldown       time.Duration
	SNSTopicARN    string // empty logs notifications instead of publishing
	AWSRegion      string
	AWSEndpointURL string // set to a LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
}
