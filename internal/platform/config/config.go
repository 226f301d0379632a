package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config del servicio. Todo sale de env vars (ver Load).
type Config struct {
	Addr string

	DBDSN       string
	AutoMigrate bool

	LogLevel  string
	LogFormat string
	AppName   string
	SeqURL    string

	SentryDSN   string
	Environment string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load lee la configuración desde env:
// - PORT (default 8080)
// - DB_DSN (opcional; sin DSN se usa storage in-memory)
// - DB_AUTO_MIGRATE=true|false (default false)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME, SEQ_URL
// - SENTRY_DSN (opcional), APP_ENV (default development)
// - HTTP_READ_TIMEOUT / HTTP_WRITE_TIMEOUT (duraciones Go, ej: "5s")
func Load() (Config, error) {
	cfg := Config{
		Addr:         ":8080",
		DBDSN:        strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		AppName:      envOr("APP_NAME", "pets-provider"),
		SeqURL:       strings.TrimSpace(os.Getenv("SEQ_URL")),
		SentryDSN:    strings.TrimSpace(os.Getenv("SENTRY_DSN")),
		Environment:  envOr("APP_ENV", "development"),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Addr = ":" + v
	}

	if v := strings.TrimSpace(os.Getenv("DB_AUTO_MIGRATE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.AutoMigrate = b
	}

	var err error
	if cfg.ReadTimeout, err = envDuration("HTTP_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = envDuration("HTTP_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}
