package config

import (
	"errors"
	"strings"
	"time"
)

// Config carries every runtime setting the server needs. It is built once in
// main and handed to the components that use it, so nothing reads the
// environment at call time.
type Config struct {
	Addr string

	MongoURL string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	RedisAddr     string
	RedisPassword string

	EmailAPIKey string
	EmailSender string

	NatsURL string

	CatalogBaseURL string
	CatalogTimeout time.Duration

	LoginWindow   time.Duration
	LoginMaxTries int
}

// Load reads the configuration from environment variables. MONGO_URL and
// JWT_SECRET have no usable defaults and missing them is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:               GetEnvAsString("PORT", ":8080"),
		MongoURL:           GetEnvAsString("MONGO_URL", ""),
		MongoDB:            GetEnvAsString("MONGO_DB", "website_movies"),
		JWTSecret:          GetEnvAsString("JWT_SECRET", ""),
		TokenTTL:           GetEnvAsDuration("TOKEN_TTL", time.Hour),
		GoogleClientID:     GetEnvAsString("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetEnvAsString("GOOGLE_SECRET", ""),
		GoogleRedirectURL:  GetEnvAsString("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback"),
		RedisAddr:          GetEnvAsString("REDIS_ADDR", ""),
		RedisPassword:      GetEnvAsString("REDIS_PASSWORD", ""),
		EmailAPIKey:        GetEnvAsString("EMAIL_API_KEY", ""),
		EmailSender:        GetEnvAsString("EMAIL_SENDER", ""),
		NatsURL:            GetEnvAsString("NATS_URL", ""),
		CatalogBaseURL:     GetEnvAsString("CATALOG_BASE_URL", "https://yts.mx/api/v2"),
		CatalogTimeout:     GetEnvAsDuration("CATALOG_TIMEOUT", 10*time.Second),
		LoginWindow:        GetEnvAsDuration("LOGIN_WINDOW", time.Minute),
		LoginMaxTries:      GetEnvAsInt("LOGIN_MAX_TRIES", 10),
	}

	// PORT is often set to a bare number; echo needs a host:port address.
	if !strings.Contains(cfg.Addr, ":") {
		cfg.Addr = ":" + cfg.Addr
	}

	if cfg.MongoURL == "" {
		return nil, errors.New("MONGO_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return cfg, nil
}
