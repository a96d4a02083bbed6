// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/olegiv/quillfolio/internal/cache"
	"github.com/olegiv/quillfolio/internal/config"
	"github.com/olegiv/quillfolio/internal/content"
	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/markdown"
	"github.com/olegiv/quillfolio/internal/service"
)

// app holds the components shared by every subcommand.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	recorder  *logging.Recorder
	cache     cache.Cache
	cacheInfo cache.Info
	pages     *service.Pages
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	base := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	recorder := logging.NewRecorder(base.Handler(), cfg.RecentEvents)
	logger := slog.New(recorder)
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}
	i18n.SetActiveLanguages(cfg.Locales)
	i18n.SetDefaultLanguage(cfg.DefaultLocale)

	a := &app{cfg: cfg, logger: logger, recorder: recorder}

	mdOpts := []markdown.Option{markdown.WithLogger(logger)}
	if cfg.CacheEnabled {
		cacheCfg := cache.DefaultConfig()
		cacheCfg.DefaultTTL = cfg.CacheTTLDuration()
		cacheCfg.MaxSize = cfg.CacheMaxSize
		cacheCfg.Prefix = cfg.CachePrefix
		if cfg.UseRedisCache() {
			cacheCfg.Type = cache.TypeRedis
			cacheCfg.RedisURL = cfg.RedisURL
		}
		c, info, err := cache.New(cacheCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("creating render cache: %w", err)
		}
		a.cache, a.cacheInfo = c, info
		mdOpts = append(mdOpts, markdown.WithCache(c, cfg.CacheTTLDuration()))
		logger.Info("render cache ready", "category", logging.CategoryCache,
			"backend", info.Backend, "fallback", info.IsFallback)
	}

	repo := content.New(cfg.ContentDir,
		content.WithDefaultLocale(cfg.DefaultLocale),
		content.WithRenderer(markdown.New(mdOpts...)),
		content.WithLogger(logger),
	)
	a.pages = service.NewPages(repo)
	return a, nil
}

func (a *app) Close() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("closing render cache", "category", logging.CategoryCache, "error", err)
	}
}
