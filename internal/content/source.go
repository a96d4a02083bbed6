// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/olegiv/quillfolio/internal/model"
	"github.com/olegiv/quillfolio/internal/util"
)

// Kind names a content collection.
type Kind string

// Content kinds.
const (
	KindPost        Kind = "post"
	KindCategory    Kind = "category"
	KindPortfolio   Kind = "portfolio"
	KindService     Kind = "service"
	KindTestimonial Kind = "testimonial"
	KindAbout       Kind = "about"
)

// Source locations, relative to a locale directory.
const (
	postsDir         = "blog/posts"
	categoriesDir    = "blog/categories"
	portfolioFile    = "portfolio/writing-samples.json"
	testimonialsFile = "portfolio/testimonials.json"
	servicesFile     = "services/services-list.json"
	aboutFile        = "about/about-content.json"

	postExt     = ".md"
	categoryExt = ".json"
)

// The read* methods below load one source for one locale and report every
// failure as an *Error. They never fall back; that policy lives in the
// accessors in repository.go.

func (r *Repository) readPosts(ctx context.Context, locale string) ([]model.BlogPost, error) {
	dir := path.Join(locale, postsDir)
	names, err := r.listDir(KindPost, locale, dir, postExt)
	if err != nil {
		return nil, err
	}

	posts := make([]model.BlogPost, 0, len(names))
	for _, name := range names {
		post, err := r.readPostFile(ctx, locale, path.Join(dir, name), strings.TrimSuffix(name, postExt))
		if err != nil {
			r.logSkipped(err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *Repository) readPost(ctx context.Context, locale, slug string) (model.BlogPost, error) {
	p := path.Join(locale, postsDir, slug+postExt)
	if !util.IsSafePathSegment(slug) || !util.IsSafePathSegment(locale) {
		return model.BlogPost{}, notFound(KindPost, locale, p)
	}
	return r.readPostFile(ctx, locale, p, slug)
}

func (r *Repository) readPostFile(ctx context.Context, locale, p, slug string) (model.BlogPost, error) {
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return model.BlogPost{}, readFailure(KindPost, locale, p, err)
	}

	var post model.BlogPost
	body, err := frontmatter.Parse(bytes.NewReader(data), &post)
	if err != nil {
		return model.BlogPost{}, malformed(KindPost, locale, p, err)
	}
	post.Slug = slug

	if err := r.validate.Struct(post); err != nil {
		return model.BlogPost{}, malformed(KindPost, locale, p, err)
	}

	html, err := r.renderer.Render(ctx, body)
	if err != nil {
		return model.BlogPost{}, malformed(KindPost, locale, p, err)
	}
	post.Content = html

	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.ReadTime == "" {
		post.ReadTime = CalculateReadTime(string(body))
	}
	if post.Excerpt == "" {
		post.Excerpt = GenerateExcerpt(html, DefaultExcerptLength)
	}
	return post, nil
}

func (r *Repository) readCategories(_ context.Context, locale string) ([]model.Category, error) {
	dir := path.Join(locale, categoriesDir)
	names, err := r.listDir(KindCategory, locale, dir, categoryExt)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		c, err := r.readCategoryFile(locale, path.Join(dir, name), strings.TrimSuffix(name, categoryExt))
		if err != nil {
			r.logSkipped(err)
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) readCategory(_ context.Context, locale, slug string) (model.Category, error) {
	p := path.Join(locale, categoriesDir, slug+categoryExt)
	if !util.IsSafePathSegment(slug) || !util.IsSafePathSegment(locale) {
		return model.Category{}, notFound(KindCategory, locale, p)
	}
	return r.readCategoryFile(locale, p, slug)
}

// readCategoryFile decodes one category. A file without a slug field takes
// its slug from the file name.
func (r *Repository) readCategoryFile(locale, p, fileSlug string) (model.Category, error) {
	var c model.Category
	if err := r.readJSON(KindCategory, locale, p, &c); err != nil {
		return model.Category{}, err
	}
	if c.Slug == "" {
		c.Slug = fileSlug
	}
	if err := r.validate.Struct(c); err != nil {
		return model.Category{}, malformed(KindCategory, locale, p, err)
	}
	return c, nil
}

func (r *Repository) readPortfolio(_ context.Context, locale string) ([]model.PortfolioItem, error) {
	p := path.Join(locale, portfolioFile)
	var doc model.PortfolioDocument
	if err := r.readJSON(KindPortfolio, locale, p, &doc); err != nil {
		return nil, err
	}
	return validEntries(r, KindPortfolio, locale, p, doc.Items, func(i model.PortfolioItem) string { return i.Slug }), nil
}

func (r *Repository) readServices(_ context.Context, locale string) ([]model.Service, error) {
	p := path.Join(locale, servicesFile)
	var records []model.ServiceRecord
	if err := r.readJSON(KindService, locale, p, &records); err != nil {
		return nil, err
	}
	services := make([]model.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, rec.ToService())
	}
	return validEntries(r, KindService, locale, p, services, func(s model.Service) string { return s.Slug }), nil
}

func (r *Repository) readTestimonials(_ context.Context, locale string) ([]model.Testimonial, error) {
	p := path.Join(locale, testimonialsFile)
	var items []model.Testimonial
	if err := r.readJSON(KindTestimonial, locale, p, &items); err != nil {
		return nil, err
	}
	return validEntries(r, KindTestimonial, locale, p, items, nil), nil
}

func (r *Repository) readAbout(_ context.Context, locale string) (model.AboutContent, error) {
	p := path.Join(locale, aboutFile)
	var about model.AboutContent
	if err := r.readJSON(KindAbout, locale, p, &about); err != nil {
		return model.AboutContent{}, err
	}
	if err := r.validate.Struct(about); err != nil {
		return model.AboutContent{}, malformed(KindAbout, locale, p, err)
	}
	if about.Skills == nil {
		about.Skills = []string{}
	}
	if about.Experience == nil {
		about.Experience = []model.Experience{}
	}
	return about, nil
}

// listDir returns the names of regular entries in dir with the given
// extension, in file name order.
func (r *Repository) listDir(kind Kind, locale, dir, ext string) ([]string, error) {
	if !util.IsSafePathSegment(locale) {
		return nil, notFound(kind, locale, dir)
	}
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, readFailure(kind, locale, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// readJSON reads and decodes a JSON file into v.
func (r *Repository) readJSON(kind Kind, locale, p string, v any) error {
	if !util.IsSafePathSegment(locale) {
		return notFound(kind, locale, p)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return readFailure(kind, locale, p, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return malformed(kind, locale, p, err)
	}
	return nil
}

// validEntries drops records that fail validation and, when slugOf is set,
// records repeating an earlier slug. Both are logged and skipped.
func validEntries[T any](r *Repository, kind Kind, locale, p string, items []T, slugOf func(T) string) []T {
	out := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if err := r.validate.Struct(item); err != nil {
			r.logSkipped(malformed(kind, locale, fmt.Sprintf("%s[%d]", p, i), err))
			continue
		}
		if slugOf != nil {
			slug := slugOf(item)
			if seen[slug] {
				r.logSkipped(malformed(kind, locale, fmt.Sprintf("%s[%d]", p, i), errors.New("duplicate slug "+slug)))
				continue
			}
			seen[slug] = true
		}
		out = append(out, item)
	}
	return out
}
