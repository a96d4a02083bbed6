// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads localized site content from a directory tree.
//
// The tree holds one directory per locale:
//
//	<root>/<locale>/blog/posts/*.md
//	<root>/<locale>/blog/categories/*.json
//	<root>/<locale>/portfolio/writing-samples.json
//	<root>/<locale>/portfolio/testimonials.json
//	<root>/<locale>/services/services-list.json
//	<root>/<locale>/about/about-content.json
//
// Every accessor reads from disk on each call. When a source for the
// requested locale is missing, unreadable or malformed, the accessor retries
// once with the default locale and otherwise returns an empty result.
package content

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/markdown"
	"github.com/olegiv/quillfolio/internal/model"
)

// Result size caps.
const (
	FeaturedPostsLimit     = 4
	FeaturedPortfolioLimit = 6
	FeaturedServicesLimit  = 6
)

// Repository provides read access to the content tree.
type Repository struct {
	fsys          fs.FS
	defaultLocale string
	renderer      *markdown.Renderer
	validate      *validator.Validate
	logger        *slog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithDefaultLocale sets the locale used as fallback. Defaults to "en".
// The value names a directory and is used as given.
func WithDefaultLocale(locale string) Option {
	return func(r *Repository) {
		if locale != "" {
			r.defaultLocale = locale
		}
	}
}

// WithFS reads content from fsys instead of the root directory.
func WithFS(fsys fs.FS) Option {
	return func(r *Repository) {
		r.fsys = fsys
	}
}

// WithRenderer sets the Markdown renderer for post bodies.
func WithRenderer(m *markdown.Renderer) Option {
	return func(r *Repository) {
		r.renderer = m
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = l
	}
}

// New creates a Repository rooted at root.
func New(root string, opts ...Option) *Repository {
	r := &Repository{
		defaultLocale: i18n.DefaultLanguage,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fsys == nil {
		r.fsys = os.DirFS(root)
	}
	if r.renderer == nil {
		r.renderer = markdown.New()
	}
	if r.defaultLocale == "" {
		r.defaultLocale = i18n.DefaultLanguage
	}
	return r
}

// DefaultLocale returns the fallback locale.
func (r *Repository) DefaultLocale() string {
	return r.defaultLocale
}

// Posts returns all posts for locale, newest first.
func (r *Repository) Posts(ctx context.Context, locale string) []model.BlogPost {
	posts, _ := withFallback(r, locale, func(loc string) ([]model.BlogPost, error) {
		return r.readPosts(ctx, loc)
	})
	if posts == nil {
		return []model.BlogPost{}
	}
	// Dates compare as strings; ISO-8601 values sort chronologically.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts
}

// Post returns the post with slug.
func (r *Repository) Post(ctx context.Context, slug, locale string) (model.BlogPost, bool) {
	return withFallback(r, locale, func(loc string) (model.BlogPost, error) {
		return r.readPost(ctx, loc, slug)
	})
}

// FeaturedPosts returns up to FeaturedPostsLimit featured posts, newest first.
func (r *Repository) FeaturedPosts(ctx context.Context, locale string) []model.BlogPost {
	return firstMatching(r.Posts(ctx, locale), func(p model.BlogPost) bool { return p.Featured }, FeaturedPostsLimit)
}

// PostsByCategory returns posts whose category equals category exactly.
func (r *Repository) PostsByCategory(ctx context.Context, category, locale string) []model.BlogPost {
	return filterBy(r.Posts(ctx, locale), func(p model.BlogPost) bool { return p.Category == category })
}

// Categories returns all categories for locale in file name order.
func (r *Repository) Categories(ctx context.Context, locale string) []model.Category {
	categories, _ := withFallback(r, locale, func(loc string) ([]model.Category, error) {
		return r.readCategories(ctx, loc)
	})
	if categories == nil {
		return []model.Category{}
	}
	return categories
}

// Category returns the category stored under slug.
func (r *Repository) Category(ctx context.Context, slug, locale string) (model.Category, bool) {
	return withFallback(r, locale, func(loc string) (model.Category, error) {
		return r.readCategory(ctx, loc, slug)
	})
}

// PortfolioItems returns all portfolio items for locale in file order.
func (r *Repository) PortfolioItems(ctx context.Context, locale string) []model.PortfolioItem {
	items, _ := withFallback(r, locale, func(loc string) ([]model.PortfolioItem, error) {
		return r.readPortfolio(ctx, loc)
	})
	if items == nil {
		return []model.PortfolioItem{}
	}
	return items
}

// PortfolioItem returns the portfolio item with slug.
func (r *Repository) PortfolioItem(ctx context.Context, slug, locale string) (model.PortfolioItem, bool) {
	return withFallback(r, locale, func(loc string) (model.PortfolioItem, error) {
		items, err := r.readPortfolio(ctx, loc)
		if err != nil {
			return model.PortfolioItem{}, err
		}
		return findSlug(items, slug, func(i model.PortfolioItem) string { return i.Slug }, KindPortfolio, loc)
	})
}

// FeaturedPortfolioItems returns up to FeaturedPortfolioLimit featured items.
func (r *Repository) FeaturedPortfolioItems(ctx context.Context, locale string) []model.PortfolioItem {
	return firstMatching(r.PortfolioItems(ctx, locale), func(i model.PortfolioItem) bool { return i.Featured }, FeaturedPortfolioLimit)
}

// PortfolioItemsByCategory returns items whose category equals category exactly.
func (r *Repository) PortfolioItemsByCategory(ctx context.Context, category, locale string) []model.PortfolioItem {
	return filterBy(r.PortfolioItems(ctx, locale), func(i model.PortfolioItem) bool { return i.Category == category })
}

// Services returns all services for locale in file order.
func (r *Repository) Services(ctx context.Context, locale string) []model.Service {
	services, _ := withFallback(r, locale, func(loc string) ([]model.Service, error) {
		return r.readServices(ctx, loc)
	})
	if services == nil {
		return []model.Service{}
	}
	return services
}

// Service returns the service with slug.
func (r *Repository) Service(ctx context.Context, slug, locale string) (model.Service, bool) {
	return withFallback(r, locale, func(loc string) (model.Service, error) {
		services, err := r.readServices(ctx, loc)
		if err != nil {
			return model.Service{}, err
		}
		return findSlug(services, slug, func(s model.Service) string { return s.Slug }, KindService, loc)
	})
}

// FeaturedServices returns up to FeaturedServicesLimit featured services.
func (r *Repository) FeaturedServices(ctx context.Context, locale string) []model.Service {
	return firstMatching(r.Services(ctx, locale), func(s model.Service) bool { return s.Featured }, FeaturedServicesLimit)
}

// ServicesByCategory returns services whose category equals category exactly.
func (r *Repository) ServicesByCategory(ctx context.Context, category, locale string) []model.Service {
	return filterBy(r.Services(ctx, locale), func(s model.Service) bool { return s.Category == category })
}

// Testimonials returns all testimonials for locale in file order.
func (r *Repository) Testimonials(ctx context.Context, locale string) []model.Testimonial {
	items, _ := withFallback(r, locale, func(loc string) ([]model.Testimonial, error) {
		return r.readTestimonials(ctx, loc)
	})
	if items == nil {
		return []model.Testimonial{}
	}
	return items
}

// About returns the about page content.
func (r *Repository) About(ctx context.Context, locale string) (model.AboutContent, bool) {
	return withFallback(r, locale, func(loc string) (model.AboutContent, error) {
		return r.readAbout(ctx, loc)
	})
}

// candidates returns the locales to try for a request, without repeats.
// Locales are directory names and are not case-folded.
func (r *Repository) candidates(locale string) []string {
	if locale == "" || locale == r.defaultLocale {
		return []string{r.defaultLocale}
	}
	return []string{locale, r.defaultLocale}
}

// withFallback runs read for each candidate locale and returns the first
// success. Failures are logged and absorbed.
func withFallback[T any](r *Repository, locale string, read func(string) (T, error)) (T, bool) {
	for _, loc := range r.candidates(locale) {
		v, err := read(loc)
		if err == nil {
			return v, true
		}
		r.logReadError(err)
	}
	var zero T
	return zero, false
}

func (r *Repository) logReadError(err error) {
	attrs := []any{"category", logging.CategoryContent, "error", err}
	var cerr *Error
	if errors.As(err, &cerr) {
		attrs = append(attrs, "kind", string(cerr.Kind), "locale", cerr.Locale, "path", cerr.Path)
	}
	if errors.Is(err, ErrNotFound) {
		r.logger.Debug("content not available", attrs...)
		return
	}
	r.logger.Warn("content read failed", attrs...)
}

// logSkipped records an entry dropped from an otherwise readable collection.
func (r *Repository) logSkipped(err error) {
	attrs := []any{"category", logging.CategoryContent, "error", err}
	var cerr *Error
	if errors.As(err, &cerr) {
		attrs = append(attrs, "kind", string(cerr.Kind), "locale", cerr.Locale, "path", cerr.Path)
	}
	r.logger.Warn("content entry skipped", attrs...)
}

func findSlug[T any](items []T, slug string, slugOf func(T) string, kind Kind, locale string) (T, error) {
	for _, item := range items {
		if slugOf(item) == slug {
			return item, nil
		}
	}
	var zero T
	return zero, notFound(kind, locale, slug)
}

func firstMatching[T any](items []T, keep func(T) bool, limit int) []T {
	out := make([]T, 0, limit)
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
