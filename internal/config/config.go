// Package config loads the API configuration from the process environment,
// optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

var (
	ErrMissingMongoTarget         = errors.New("mongo target not configured: set MONGO_URI or DB_USER, DB_PASS and DB_HOST")
	ErrMissingPaymentKey          = errors.New("PAYMENT_GATEWAY_KEY is required")
	ErrMissingJWTSecret           = errors.New("JWT_SECRET is required when AUTH_PROVIDER=jwt")
	ErrMissingFirebaseCredentials = errors.New("FIREBASE_SERVICE_ACCOUNT_PATH is required when AUTH_PROVIDER=firebase")
	ErrUnknownAuthProvider        = errors.New("unknown AUTH_PROVIDER")
)

type Config struct {
	Port     string   `env:"PORT" envDefault:"5000"`
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
	Mongo    Mongo    `envPrefix:"MONGO_"`
	DB       DB       `envPrefix:"DB_"`
	Auth     Auth
	Firebase Firebase `envPrefix:"FIREBASE_"`
	Payment  Payment  `envPrefix:"PAYMENT_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	CORS     CORS     `envPrefix:"CORS_"`
}

type Mongo struct {
	URI             string        `env:"URI"`
	Database        string        `env:"DATABASE" envDefault:"ParcelDB"`
	SelectTimeout   time.Duration `env:"SELECT_TIMEOUT" envDefault:"5s"`
	UseTransactions bool          `env:"USE_TRANSACTIONS" envDefault:"true"`
}

// DB holds the Atlas-style credentials used when MONGO_URI is not set.
type DB struct {
	User string `env:"USER"`
	Pass string `env:"PASS"`
	Host string `env:"HOST"`
}

type Auth struct {
	Provider  string `env:"AUTH_PROVIDER" envDefault:"firebase"`
	JWTSecret string `env:"JWT_SECRET"`
}

type Firebase struct {
	CredentialsFile string `env:"SERVICE_ACCOUNT_PATH"`
}

type Payment struct {
	SecretKey string `env:"GATEWAY_KEY"`
	Currency  string `env:"CURRENCY" envDefault:"usd"`
}

// Redis is optional; an empty URL disables event publishing.
type Redis struct {
	URL string `env:"URL"`
}

type CORS struct {
	AllowOrigins []string `env:"ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads .env (if present) and the environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv parses and validates the configuration without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = cfg.DB.URI()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// URI builds the mongodb+srv connection string, or "" when incomplete.
func (d DB) URI() string {
	if d.User == "" || d.Pass == "" || d.Host == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return ErrMissingMongoTarget
	}
	if c.Payment.SecretKey == "" {
		return ErrMissingPaymentKey
	}

	switch c.Auth.Provider {
	case AuthProviderJWT:
		if c.Auth.JWTSecret == "" {
			return ErrMissingJWTSecret
		}
	case AuthProviderFirebase:
		if c.Firebase.CredentialsFile == "" {
			return ErrMissingFirebaseCredentials
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAuthProvider, c.Auth.Provider)
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
