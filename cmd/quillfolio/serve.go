// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegiv/quillfolio/internal/handler"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/middleware"
	"github.com/olegiv/quillfolio/internal/version"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.ServerPort = port
			}
			a, err := newApp(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides QF_SERVER_PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	locales := middleware.NewLocales(a.cfg.Locales, a.cfg.DefaultLocale)

	healthOpts := []handler.HealthOption{handler.WithRecorder(a.recorder)}
	if a.cache != nil {
		healthOpts = append(healthOpts, handler.WithCache(a.cache, a.cacheInfo))
	}

	router := handler.NewRouter(handler.RouterConfig{
		Content:       handler.NewContentHandler(a.pages),
		Health:        handler.NewHealthHandler(version.New(appVersion, appGitCommit, appBuildTime), locales.Codes(), healthOpts...),
		Locales:       locales,
		Logger:        a.logger,
		CORSOrigins:   a.cfg.CORSOrigins,
		IsDevelopment: a.cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              a.cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", "category", logging.CategorySystem,
			"addr", srv.Addr, "env", a.cfg.Env, "content", a.cfg.ContentDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server...", "category", logging.CategorySystem)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.logger.Info("server stopped", "category", logging.CategorySystem)
	return nil
}
