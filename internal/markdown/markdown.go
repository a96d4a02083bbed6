// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown converts post bodies to HTML.
//
// Authors are trusted: raw HTML in the source is emitted unescaped and the
// output is never sanitised. Callers inject the result into pages as-is.
package markdown

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/olegiv/quillfolio/internal/cache"
	"github.com/olegiv/quillfolio/internal/util"
)

// cacheKeyPrefix namespaces rendered HTML in a shared cache.
const cacheKeyPrefix = "md:"

// Renderer converts Markdown to HTML, optionally memoising results by source digest.
type Renderer struct {
	md     goldmark.Markdown
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCache memoises rendered HTML in c. Entries are keyed by the SHA-256 of
// the source, so edits to a post always produce a fresh render.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(r *Renderer) {
		r.cache = c
		r.ttl = ttl
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// New creates a Renderer with GitHub-flavoured Markdown and raw HTML passthrough.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts src to HTML.
func (r *Renderer) Render(ctx context.Context, src []byte) (string, error) {
	var key string
	if r.cache != nil {
		sum := sha256.Sum256(src)
		key = cacheKeyPrefix + hex.EncodeToString(sum[:])
		if cached, err := r.cache.Get(ctx, key); err == nil {
			return string(cached), nil
		}
	}

	var buf bytes.Buffer
	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	if err := r.md.Convert(src, &buf, parser.WithContext(pctx)); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, buf.Bytes(), r.ttl); err != nil {
			r.logger.Debug("markdown cache set failed", "error", err)
		}
	}
	return buf.String(), nil
}

// headingIDs generates transliterated, document-unique heading anchors so
// Vietnamese headings get readable ids ("Tiếp thị" -> "tiep-thi").
type headingIDs struct {
	seen map[string]struct{}
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{seen: make(map[string]struct{})}
}

// Generate implements parser.IDs.
func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := util.Slugify(string(value))
	if !util.IsValidSlug(base) {
		base = "heading"
	}

	id := base
	for i := 1; ; i++ {
		if _, taken := h.seen[id]; !taken {
			break
		}
		id = base + "-" + strconv.Itoa(i)
	}
	h.seen[id] = struct{}{}
	return []byte(id)
}

// Put implements parser.IDs.
func (h *headingIDs) Put(value []byte) {
	h.seen[string(value)] = struct{}{}
}
