// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DatabaseOptions struct {
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"crmaster"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	SearchPath string `env:"DB_SCHEMA" envDefault:"public"`
}

// DSN returns a key/value connection string understood by pgx and lib/pq.
func (d DatabaseOptions) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.SearchPath,
	)
}

// URL returns the same connection as a postgres:// URL, used by pgxpool.
func (d DatabaseOptions) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, d.SearchPath,
	)
}

// DefaultJWTSecret is the placeholder shipped in envDefault. Validate
// refuses to start with it.
const DefaultJWTSecret = "your-secret-key"

type JWTOptions struct {
	Secret       string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	ExpiryPeriod time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
}

type ServerOptions struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

type SMTPOptions struct {
	Host     string `env:"SMTP_HOST" envDefault:"localhost"`
	Port     int    `env:"SMTP_PORT" envDefault:"25"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

type EmailOptions struct {
	// Provider is either "sendgrid" or "smtp".
	Provider       string      `env:"EMAIL_PROVIDER" envDefault:"smtp"`
	DefaultFrom    string      `env:"CRM_DEFAULT_FROM_EMAIL" envDefault:"admin@test.com"`
	FromName       string      `env:"CRM_DEFAULT_FROM_NAME" envDefault:"CRMaster"`
	SendgridAPIKey string      `env:"SENDGRID_API_KEY"`
	SMTP           SMTPOptions `envPrefix:""`
}

type GuardOptions struct {
	Fallback string `env:"CRM_GUARD_FALLBACK" envDefault:"/api/leads"`
	LoginURL string `env:"CRM_LOGIN_URL" envDefault:"/api/auth/login"`
}

type RateLimitOptions struct {
	Enabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Rate    string `env:"RATE_LIMIT_AUTH" envDefault:"20-M"`
}

type MetricsOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/metrics"`
}

type Config struct {
	Database  DatabaseOptions
	JWT       JWTOptions
	Server    ServerOptions
	Email     EmailOptions
	Guard     GuardOptions
	RateLimit RateLimitOptions
	Metrics   MetricsOptions
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Load reads .env files when present and parses the environment.
func Load() (*Config, error) {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks option combinations that env tags cannot express.
func (c *Config) Validate() error {
	switch c.Email.Provider {
	case "smtp":
	case "sendgrid":
		if c.Email.SendgridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when EMAIL_PROVIDER is sendgrid")
		}
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be 'smtp' or 'sendgrid', got %q", c.Email.Provider)
	}

	if c.Email.DefaultFrom == "" {
		return fmt.Errorf("CRM_DEFAULT_FROM_EMAIL must not be empty")
	}

	if c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set to a non-default value")
	}

	return nil
}

// LoadDatabase reads only the database section, for tools that never serve
// requests.
func LoadDatabase() (*DatabaseOptions, error) {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	opts := &DatabaseOptions{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return opts, nil
}

func loadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}
