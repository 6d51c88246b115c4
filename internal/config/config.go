package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	GoEnv       string `env:"GO_ENV" envDefault:""`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	Server    ServerConfig
	Email     EmailConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port            int           `env:"WEBSITE_PORT" envDefault:"4002"`
	Address         string        `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address in host:port form
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// Email providers accepted by EMAIL_PROVIDER
const (
	ProviderAuto    = "auto"
	ProviderEmailJS = "emailjs"
	ProviderMailgun = "mailgun"
	ProviderNoop    = "noop"
)

// EmailConfig holds lead notification delivery settings
type EmailConfig struct {
	// Provider selects the sender: auto, emailjs, mailgun or noop
	Provider string `env:"EMAIL_PROVIDER" envDefault:"auto"`

	// TemplateID is the provider-side template used for lead notifications
	TemplateID string `env:"EMAIL_TEMPLATE_ID" envDefault:"template_flexxoo"`
	// ToEmail receives every lead notification
	ToEmail string `env:"EMAIL_TO_ADDRESS" envDefault:"admin@flexxoo.com"`
	// Timeout bounds a single delivery attempt
	Timeout time.Duration `env:"EMAIL_TIMEOUT" envDefault:"15s"`

	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com"`
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID" envDefault:"service_flexxoo"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY" envDefault:""`
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY" envDefault:""`

	MailgunDomain  string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey  string `env:"MAILGUN_API_KEY" envDefault:""`
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	FromEmail      string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@flexxoo.com"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"Flexxoo Website"`
}

// IsProduction reports whether ENVIRONMENT or GO_ENV is "production"
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.GoEnv == "production"
}

// EmailJSConfigured returns true if an EmailJS public key is set
func (e *EmailConfig) EmailJSConfigured() bool {
	return e.EmailJSPublicKey != "" && e.EmailJSServiceID != ""
}

// MailgunConfigured returns true if Mailgun is configured
func (e *EmailConfig) MailgunConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// Lead store drivers accepted by LEADS_STORE
const (
	StoreBadger = "badger"
	StoreMemory = "memory"
)

// StorageConfig holds the local lead log settings
type StorageConfig struct {
	Driver  string `env:"LEADS_STORE" envDefault:"badger"`
	DataDir string `env:"LEADS_DATA_DIR" envDefault:"data/leads"`
}

// RateLimitConfig bounds form submissions per process. PerMinute 0 turns
// limiting off.
type RateLimitConfig struct {
	PerMinute int `env:"SUBMIT_RATE_PER_MINUTE" envDefault:"30"`
	Burst     int `env:"SUBMIT_BURST" envDefault:"5"`
}

// LoadDotEnv loads .env files if present (for local development).
// .env.local overrides .env.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env", ".env.local"}
	}
	_ = godotenv.Load(paths[0])
	for _, p := range paths[1:] {
		_ = godotenv.Overload(p)
	}
}

// Parse reads configuration from environment variables
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig loads configuration and logs the effective settings
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Server.Port),
		slog.String("email_provider", cfg.Email.Provider),
		slog.String("leads_store", cfg.Storage.Driver),
	)

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Email.Provider {
	case ProviderAuto, ProviderEmailJS, ProviderMailgun, ProviderNoop:
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", c.Email.Provider)
	}
	switch c.Storage.Driver {
	case StoreBadger, StoreMemory:
	default:
		return fmt.Errorf("unknown LEADS_STORE %q", c.Storage.Driver)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("SUBMIT_RATE_PER_MINUTE must not be negative")
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("SUBMIT_BURST must be positive when submissions are rate limited")
	}
	return nil
}
