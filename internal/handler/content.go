// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/middleware"
	"github.com/olegiv/quillfolio/internal/search"
	"github.com/olegiv/quillfolio/internal/service"
)

// ContentHandler serves the localized content routes under /{locale}.
type ContentHandler struct {
	pages *service.Pages
}

// NewContentHandler creates a new content handler.
func NewContentHandler(pages *service.Pages) *ContentHandler {
	return &ContentHandler{pages: pages}
}

// Home handles GET /{locale}.
func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.pages.Home(r.Context(), middleware.GetLocale(r)))
}

// Blog handles GET /{locale}/blog?q=...&categories=a,b.
func (h *ContentHandler) Blog(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.pages.Blog(r.Context(), middleware.GetLocale(r), parseState(r)))
}

// Post handles GET /{locale}/blog/{slug}.
func (h *ContentHandler) Post(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.Post(r.Context(), chi.URLParam(r, "slug"), middleware.GetLocale(r))
	if !ok {
		h.NotFound(w, r)
		return
	}
	writeJSONData(w, page)
}

// Category handles GET /{locale}/blog/category/{slug}.
func (h *ContentHandler) Category(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.Category(r.Context(), chi.URLParam(r, "slug"), middleware.GetLocale(r))
	if !ok {
		h.NotFound(w, r)
		return
	}
	writeJSONData(w, page)
}

// Portfolio handles GET /{locale}/portfolio.
func (h *ContentHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.pages.Portfolio(r.Context(), middleware.GetLocale(r)))
}

// PortfolioItem handles GET /{locale}/portfolio/{slug}.
func (h *ContentHandler) PortfolioItem(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.PortfolioItem(r.Context(), chi.URLParam(r, "slug"), middleware.GetLocale(r))
	if !ok {
		h.NotFound(w, r)
		return
	}
	writeJSONData(w, page)
}

// Services handles GET /{locale}/services.
func (h *ContentHandler) Services(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.pages.Services(r.Context(), middleware.GetLocale(r)))
}

// Service handles GET /{locale}/services/{slug}.
func (h *ContentHandler) Service(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.Service(r.Context(), chi.URLParam(r, "slug"), middleware.GetLocale(r))
	if !ok {
		h.NotFound(w, r)
		return
	}
	writeJSONData(w, page)
}

// Testimonials handles GET /{locale}/testimonials.
func (h *ContentHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.pages.Testimonials(r.Context(), middleware.GetLocale(r)))
}

// About handles GET /{locale}/about.
func (h *ContentHandler) About(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pages.About(r.Context(), middleware.GetLocale(r))
	if !ok {
		h.NotFound(w, r)
		return
	}
	writeJSONData(w, page)
}

// Search handles GET /{locale}/search?q=....
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSONData(w, h.pages.Search(r.Context(), query, middleware.GetLocale(r)))
}

// Messages handles GET /{locale}/messages and returns the UI strings.
func (h *ContentHandler) Messages(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, i18n.Messages(middleware.GetLocale(r)))
}

// NotFound writes a localized 404 response.
func (h *ContentHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)
	if locale == "" {
		locale = i18n.DefaultLanguage
	}
	writeJSONError(w, http.StatusNotFound, i18n.T(locale, "error.notFound"))
}

// parseState reads the blog filter from the query string.
func parseState(r *http.Request) search.State {
	q := r.URL.Query()
	state := search.State{Query: q.Get("q"), Categories: []string{}}
	for _, slug := range strings.Split(q.Get("categories"), ",") {
		if slug = strings.TrimSpace(slug); slug != "" {
			state.Categories = append(state.Categories, slug)
		}
	}
	return state
}
