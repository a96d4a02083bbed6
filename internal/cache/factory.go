// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// Backend types.
const (
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

// Config holds configuration for cache creation.
type Config struct {
	// Type is the cache backend type: "memory" or "redis"
	Type string

	// RedisURL is the Redis connection URL (only for redis type)
	RedisURL string

	// Prefix is the key prefix for Redis (only for redis type)
	Prefix string

	DefaultTTL      time.Duration
	MaxSize         int // memory only, 0 = unlimited
	CleanupInterval time.Duration

	// FallbackToMemory uses a memory cache when Redis cannot be reached.
	FallbackToMemory bool
}

// Info describes the backend that New actually created.
type Info struct {
	Backend    string `json:"backend"`
	IsFallback bool   `json:"is_fallback"`
}

// DefaultConfig returns default cache configuration.
func DefaultConfig() Config {
	return Config{
		Type:             TypeMemory,
		Prefix:           "quillfolio:",
		DefaultTTL:       time.Hour,
		MaxSize:          1000,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
}

// New creates a cache based on the provided configuration.
func New(cfg Config, logger *slog.Logger) (Cache, Info, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Type == TypeRedis {
		opts := DefaultRedisCacheOptions()
		opts.URL = cfg.RedisURL
		if cfg.Prefix != "" {
			opts.Prefix = cfg.Prefix
		}
		if cfg.DefaultTTL > 0 {
			opts.DefaultTTL = cfg.DefaultTTL
		}

		rc, err := NewRedisCache(opts)
		if err == nil {
			return rc, Info{Backend: TypeRedis}, nil
		}
		if !cfg.FallbackToMemory {
			return nil, Info{}, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Warn("redis cache unavailable, using memory cache", "error", err)
		return newMemory(cfg), Info{Backend: TypeMemory, IsFallback: true}, nil
	}

	return newMemory(cfg), Info{Backend: TypeMemory}, nil
}

func newMemory(cfg Config) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
}

// SanitizeRedisURL masks the password of a Redis URL for logging.
func SanitizeRedisURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "[invalid URL]"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}
