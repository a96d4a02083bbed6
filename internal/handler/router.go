// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/olegiv/quillfolio/internal/middleware"
)

// RouterConfig holds the dependencies of the HTTP router.
type RouterConfig struct {
	Content       *ContentHandler
	Health        *HealthHandler
	Locales       *middleware.Locales
	Logger        *slog.Logger
	CORSOrigins   []string
	IsDevelopment bool
}

// NewRouter builds the preview server routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment)))
	r.Use(corsMiddleware(cfg.CORSOrigins, cfg.IsDevelopment))

	r.NotFound(cfg.Content.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", cfg.Health.Health)
	r.Get("/health/live", cfg.Health.Liveness)
	r.Get("/", cfg.Locales.Redirect)

	h := cfg.Content
	r.Route("/{"+middleware.LocaleParam+"}", func(r chi.Router) {
		r.Use(cfg.Locales.Middleware(http.HandlerFunc(h.NotFound)))

		r.Get("/", h.Home)
		r.Get("/blog", h.Blog)
		r.Get("/blog/category/{slug}", h.Category)
		r.Get("/blog/{slug}", h.Post)
		r.Get("/portfolio", h.Portfolio)
		r.Get("/portfolio/{slug}", h.PortfolioItem)
		r.Get("/services", h.Services)
		r.Get("/services/{slug}", h.Service)
		r.Get("/testimonials", h.Testimonials)
		r.Get("/about", h.About)
		r.Get("/search", h.Search)
		r.Get("/messages", h.Messages)
	})

	return r
}

// corsMiddleware allows cross-origin GETs from the configured origins. With
// no origins configured it allows any origin in development and none otherwise.
func corsMiddleware(origins []string, isDev bool) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		if !isDev {
			return func(next http.Handler) http.Handler { return next }
		}
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	})
	return c.Handler
}
