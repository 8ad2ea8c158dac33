// Package config loads server configuration from environment variables.
//
// Everything the process needs is decided here, once, before the server
// starts. Business logic never reads the environment directly — the token
// secret in particular is injected into the auth layer as an explicit value.
package config

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment.
//
// It returns an error if JWT_SECRET is missing: the server must refuse to
// start rather than serve protected routes without a signing key. The
// database path defaults to data/blog.db; an unopenable database fails at
// startup when the store is created.
func Load() (Config, error) {
	addr := envString("BLOG_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	cfg := Config{
		Addr:      addr,
		DBPath:    envString("BLOG_DB", "data/blog.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  envDuration("TOKEN_TTL", time.Hour),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
