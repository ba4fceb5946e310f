package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App        AppConfig        `envPrefix:"IDP_"`
	HTTP       HTTPConfig       `envPrefix:"IDP_HTTP_"`
	Database   DatabaseConfig   `envPrefix:"IDP_DB_"`
	Redis      RedisConfig      `envPrefix:"IDP_REDIS_"`
	Token      TokenConfig      `envPrefix:"IDP_TOKEN_"`
	Authorizer AuthorizerConfig `envPrefix:"IDP_AUTHORIZER_"`
	Branding   BrandingConfig   `envPrefix:"IDP_BRANDING_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"idp-console"`
}

type HTTPConfig struct {
	Host              string        `env:"HOST" envDefault:"0.0.0.0"`
	Port              int           `env:"PORT" envDefault:"4210"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
	TLSCertFile       string        `env:"TLS_CERT_FILE"`
	TLSKeyFile        string        `env:"TLS_KEY_FILE"`
}

type DatabaseConfig struct {
	URL             string        `env:"URL"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	RunMigrations   bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type RedisConfig struct {
	Addr      string `env:"ADDR" envDefault:"127.0.0.1:6379"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	EnableTLS bool   `env:"ENABLE_TLS" envDefault:"false"`
	Namespace string `env:"NAMESPACE" envDefault:"idp"`
}

type TokenConfig struct {
	Issuer         string `env:"ISSUER" envDefault:"https://id.luminauth.local"`
	Audience       string `env:"AUDIENCE" envDefault:"idp-console"`
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`
	PublicKeyPath  string `env:"PUBLIC_KEY_PATH"`
	AccessTokenTTL time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
}

// AuthorizerConfig points at the external authorization server that owns
// token issuance and consent-code lifecycle.
type AuthorizerConfig struct {
	BaseURL       string        `env:"BASE_URL"`
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"10s"`
	LockTTL       time.Duration `env:"LOCK_TTL" envDefault:"30s"`
}

// BrandingConfig decorates user-facing payloads. Resolved once at startup
// and passed explicitly to the components that render it.
type BrandingConfig struct {
	AppName      string `env:"APP_NAME" envDefault:"Luminauth"`
	LogoURL      string `env:"LOGO_URL"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("IDP_DB_URL is required")
	}
	if cfg.Token.PublicKeyPath == "" {
		return nil, fmt.Errorf("IDP_TOKEN_PUBLIC_KEY_PATH is required")
	}
	if cfg.Authorizer.BaseURL == "" {
		return nil, fmt.Errorf("IDP_AUTHORIZER_BASE_URL is required")
	}

	return cfg, nil
}
