// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package export writes every page document to a directory of JSON files
// that a static host can serve without running the preview server.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/model"
	"github.com/olegiv/quillfolio/internal/search"
	"github.com/olegiv/quillfolio/internal/service"
	"github.com/olegiv/quillfolio/internal/util"
)

// Config controls an export run.
type Config struct {
	// OutputDir is removed and recreated on every run.
	OutputDir string
	// ContentDir is the source tree. OutputDir may not lie inside it.
	ContentDir    string
	Locales       []string
	DefaultLocale string
}

// Result summarises an export run.
type Result struct {
	Files    int           `json:"files"`
	Skipped  int           `json:"skipped"`
	Locales  []string      `json:"locales"`
	Duration time.Duration `json:"duration"`
}

// Manifest is written to <out>/index.json.
type Manifest struct {
	Locales       []string         `json:"locales"`
	Languages     []model.Language `json:"languages"`
	DefaultLocale string           `json:"defaultLocale"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

// Exporter writes page documents to disk.
type Exporter struct {
	pages  *service.Pages
	cfg    Config
	logger *slog.Logger
}

// New creates an Exporter.
func New(pages *service.Pages, cfg Config, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{pages: pages, cfg: cfg, logger: logger}
}

// Export rebuilds the output directory from the current content.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	start := time.Now()
	if err := e.prepareOutput(); err != nil {
		return Result{}, err
	}

	w := &writer{root: e.cfg.OutputDir, logger: e.logger}
	for _, locale := range e.cfg.Locales {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := e.exportLocale(ctx, w, locale); err != nil {
			return Result{}, fmt.Errorf("exporting %s: %w", locale, err)
		}
	}

	languages := make([]model.Language, 0, len(e.cfg.Locales))
	for _, code := range e.cfg.Locales {
		languages = append(languages, model.LanguageFor(code, code == e.cfg.DefaultLocale))
	}
	manifest := Manifest{
		Locales:       e.cfg.Locales,
		Languages:     languages,
		DefaultLocale: e.cfg.DefaultLocale,
		GeneratedAt:   time.Now().UTC(),
	}
	if err := w.write(manifest, "index.json"); err != nil {
		return Result{}, err
	}

	res := Result{
		Files:    w.files,
		Skipped:  w.skipped,
		Locales:  e.cfg.Locales,
		Duration: time.Since(start),
	}
	e.logger.Info("export complete",
		"category", logging.CategoryExport,
		"dir", e.cfg.OutputDir,
		"files", res.Files,
		"skipped", res.Skipped,
		"duration", res.Duration.Round(time.Millisecond),
	)
	return res, nil
}

func (e *Exporter) exportLocale(ctx context.Context, w *writer, locale string) error {
	p := e.pages
	repo := p.Repository()

	if err := w.write(p.Home(ctx, locale), locale, "index.json"); err != nil {
		return err
	}
	if err := w.write(p.Blog(ctx, locale, search.State{}), locale, "blog", "index.json"); err != nil {
		return err
	}
	for _, post := range repo.Posts(ctx, locale) {
		if page, ok := p.Post(ctx, post.Slug, locale); ok {
			if err := w.writeEntry(page, locale, "blog", post.Slug); err != nil {
				return err
			}
		}
	}
	for _, c := range repo.Categories(ctx, locale) {
		if page, ok := p.Category(ctx, c.Slug, locale); ok {
			if err := w.writeEntry(page, locale, "blog/category", c.Slug); err != nil {
				return err
			}
		}
	}

	portfolio := p.Portfolio(ctx, locale)
	if err := w.write(portfolio, locale, "portfolio", "index.json"); err != nil {
		return err
	}
	for _, item := range portfolio.Items {
		if page, ok := p.PortfolioItem(ctx, item.Slug, locale); ok {
			if err := w.writeEntry(page, locale, "portfolio", item.Slug); err != nil {
				return err
			}
		}
	}

	services := p.Services(ctx, locale)
	if err := w.write(services, locale, "services", "index.json"); err != nil {
		return err
	}
	for _, svc := range services.Services {
		if page, ok := p.Service(ctx, svc.Slug, locale); ok {
			if err := w.writeEntry(page, locale, "services", svc.Slug); err != nil {
				return err
			}
		}
	}

	if err := w.write(p.Testimonials(ctx, locale), locale, "testimonials.json"); err != nil {
		return err
	}
	if about, ok := p.About(ctx, locale); ok {
		if err := w.write(about, locale, "about.json"); err != nil {
			return err
		}
	}
	if err := w.write(p.SearchIndex(ctx, locale), locale, "search-index.json"); err != nil {
		return err
	}
	return w.write(i18n.Messages(locale), locale, "messages.json")
}

// prepareOutput empties the output directory after checking it is safe to remove.
func (e *Exporter) prepareOutput() error {
	out := e.cfg.OutputDir
	if out == "" {
		return errors.New("output directory is not set")
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("refusing to use %s as output directory", abs)
	}
	if e.cfg.ContentDir != "" {
		if err := util.ValidatePathWithinBase(e.cfg.ContentDir, abs); err == nil {
			return fmt.Errorf("output directory %s is inside content directory %s", out, e.cfg.ContentDir)
		}
		if err := util.ValidatePathWithinBase(abs, e.cfg.ContentDir); err == nil {
			return fmt.Errorf("output directory %s contains content directory %s", out, e.cfg.ContentDir)
		}
	}

	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("cleaning output directory: %w", err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// writer writes JSON documents below root and counts them.
type writer struct {
	root    string
	logger  *slog.Logger
	files   int
	skipped int
}

// writeEntry writes <dir>/<slug>.json, skipping slugs that cannot name a file.
func (w *writer) writeEntry(v any, locale, dir, slug string) error {
	if !util.IsSafePathSegment(slug) {
		w.skipped++
		w.logger.Warn("skipping entry with unsafe slug",
			"category", logging.CategoryExport, "locale", locale, "dir", dir, "slug", slug)
		return nil
	}
	return w.write(v, locale, filepath.FromSlash(dir), slug+".json")
}

func (w *writer) write(v any, parts ...string) error {
	target, err := util.SafeJoinPath(w.root, parts...)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", target, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	w.files++
	return nil
}
