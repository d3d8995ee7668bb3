package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT,default=8080"`

	DatabaseURL    string `env:"DATABASE_URL,required"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS,default=10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS,default=5"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START,default=true"`

	MailHost   string `env:"MAIL_HOST"`
	MailPort   int    `env:"MAIL_PORT,default=587"`
	MailUser   string `env:"MAIL_USER"`
	MailPass   string `env:"MAIL_PASS"`
	MailFrom   string `env:"MAIL_FROM,default=Cargram <noreply@cargram.io>"`
	StaffEmail string `env:"STAFF_EMAIL,default=help@cargram.io"`

	RabbitMQURL string `env:"RABBITMQ_URL"`

	CORSAllowedOrigins          string `env:"CORS_ALLOWED_ORIGINS,default=*"`
	RateLimitPerMinute          int    `env:"RATE_LIMIT_PER_MINUTE,default=10"`
	ClientLogRateLimitPerMinute int    `env:"CLIENT_LOG_RATE_LIMIT_PER_MINUTE,default=30"`
	AdminUser                   string `env:"ADMIN_USER"`
	AdminPassword               string `env:"ADMIN_PASSWORD"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

// Load reads .env when present and then the process environment, which wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

func (c *Config) QueueEnabled() bool {
	return c.RabbitMQURL != ""
}

func (c *Config) AdminAuthEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
