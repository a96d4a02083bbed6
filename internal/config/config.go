// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ContentDir    string   `env:"QF_CONTENT_DIR" envDefault:"./content"`
	DefaultLocale string   `env:"QF_DEFAULT_LOCALE" envDefault:"en"`
	Locales       []string `env:"QF_LOCALES" envDefault:"en,vi" envSeparator:","`
	SiteURL       string   `env:"QF_SITE_URL" envDefault:"http://localhost:8080"`

	ServerHost string `env:"QF_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"QF_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"QF_ENV" envDefault:"development"`
	LogLevel   string `env:"QF_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"QF_LOG_FORMAT" envDefault:"text"`

	OutputDir   string   `env:"QF_OUTPUT_DIR" envDefault:"./public"`
	CORSOrigins []string `env:"QF_CORS_ORIGINS" envSeparator:","`

	// Markdown render cache; Redis is optional and shared between instances
	RedisURL     string `env:"QF_REDIS_URL"`
	CachePrefix  string `env:"QF_CACHE_PREFIX" envDefault:"quillfolio:"`
	CacheTTL     int    `env:"QF_CACHE_TTL" envDefault:"3600"`
	CacheMaxSize int    `env:"QF_CACHE_MAX_SIZE" envDefault:"1000"`
	CacheEnabled bool   `env:"QF_CACHE_ENABLED" envDefault:"true"`

	// Warnings kept in memory for the health endpoint
	RecentEvents int `env:"QF_RECENT_EVENTS" envDefault:"50"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheTTLDuration returns the render cache TTL.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	locales := make([]string, 0, len(cfg.Locales))
	for _, l := range cfg.Locales {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	cfg.Locales = locales

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if len(c.Locales) == 0 {
		return fmt.Errorf("QF_LOCALES must list at least one locale")
	}
	if !slices.Contains(c.Locales, c.DefaultLocale) {
		return fmt.Errorf("QF_DEFAULT_LOCALE %q is not in QF_LOCALES %v", c.DefaultLocale, c.Locales)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("QF_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("QF_CACHE_TTL must not be negative, got %d", c.CacheTTL)
	}
	return nil
}
