// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service assembles page documents from the content repository.
// The preview server returns them as JSON and the exporter writes them to disk.
package service

import (
	"context"

	"github.com/olegiv/quillfolio/internal/content"
	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/model"
	"github.com/olegiv/quillfolio/internal/search"
)

// HomePage is the landing page.
type HomePage struct {
	Locale           string              `json:"locale"`
	FeaturedPosts    []model.BlogPost    `json:"featuredPosts"`
	FeaturedServices []model.Service     `json:"featuredServices"`
	About            *model.AboutContent `json:"about"`
}

// BlogPage is the filtered post listing.
type BlogPage struct {
	Locale     string                 `json:"locale"`
	Filter     search.State           `json:"filter"`
	Posts      []model.BlogPost       `json:"posts"`
	Total      int                    `json:"total"`
	Categories []search.CategoryCount `json:"categories"`
	Summary    search.Summary         `json:"summary"`
}

// PostPage is a single post with related posts.
type PostPage struct {
	Locale        string           `json:"locale"`
	Post          model.BlogPost   `json:"post"`
	FormattedDate string           `json:"formattedDate"`
	Related       []model.BlogPost `json:"related"`
}

// CategoryPage lists the posts of one category.
type CategoryPage struct {
	Locale        string           `json:"locale"`
	Category      model.Category   `json:"category"`
	Posts         []model.BlogPost `json:"posts"`
	AllCategories []model.Category `json:"allCategories"`
}

// PortfolioPage lists writing samples and testimonials.
type PortfolioPage struct {
	Locale       string                `json:"locale"`
	Items        []model.PortfolioItem `json:"items"`
	Testimonials []model.Testimonial   `json:"testimonials"`
}

// PortfolioItemPage is a single portfolio item with related items.
type PortfolioItemPage struct {
	Locale  string                `json:"locale"`
	Item    model.PortfolioItem   `json:"item"`
	Related []model.PortfolioItem `json:"related"`
}

// ServicesPage lists all services.
type ServicesPage struct {
	Locale   string          `json:"locale"`
	Services []model.Service `json:"services"`
}

// ServicePage is a single service with other services.
type ServicePage struct {
	Locale  string          `json:"locale"`
	Service model.Service   `json:"service"`
	Related []model.Service `json:"related"`
}

// TestimonialsPage lists testimonials.
type TestimonialsPage struct {
	Locale       string              `json:"locale"`
	Testimonials []model.Testimonial `json:"testimonials"`
}

// AboutPage is the about page.
type AboutPage struct {
	Locale string             `json:"locale"`
	About  model.AboutContent `json:"about"`
}

// SearchPage holds cross-collection search results.
type SearchPage struct {
	Locale       string               `json:"locale"`
	Query        string               `json:"query"`
	Results      []model.SearchResult `json:"results"`
	Empty        bool                 `json:"empty"`
	EmptyMessage string               `json:"emptyMessage,omitempty"`
}

// Pages builds page documents. It holds no state besides the repository,
// so every call reflects the files on disk.
type Pages struct {
	repo *content.Repository
}

// NewPages creates a page builder over repo.
func NewPages(repo *content.Repository) *Pages {
	return &Pages{repo: repo}
}

// Repository returns the underlying content repository.
func (p *Pages) Repository() *content.Repository {
	return p.repo
}

// Home builds the landing page.
func (p *Pages) Home(ctx context.Context, locale string) HomePage {
	page := HomePage{
		Locale:           locale,
		FeaturedPosts:    p.repo.FeaturedPosts(ctx, locale),
		FeaturedServices: p.repo.FeaturedServices(ctx, locale),
	}
	if about, ok := p.repo.About(ctx, locale); ok {
		page.About = &about
	}
	return page
}

// Blog builds the post listing narrowed by state.
func (p *Pages) Blog(ctx context.Context, locale string, state search.State) BlogPage {
	posts := p.repo.Posts(ctx, locale)
	categories := p.repo.Categories(ctx, locale)
	filtered := search.Filter(posts, categories, state)

	if state.Categories == nil {
		state.Categories = []string{}
	}
	return BlogPage{
		Locale:     locale,
		Filter:     state,
		Posts:      filtered,
		Total:      len(posts),
		Categories: search.RankCategories(posts, categories),
		Summary:    search.Summarize(locale, state, len(filtered), categories),
	}
}

// Post builds a post page.
func (p *Pages) Post(ctx context.Context, slug, locale string) (PostPage, bool) {
	post, ok := p.repo.Post(ctx, slug, locale)
	if !ok {
		return PostPage{}, false
	}
	return PostPage{
		Locale:        locale,
		Post:          post,
		FormattedDate: i18n.FormatDate(locale, post.Date),
		Related:       content.RelatedPosts(p.repo.Posts(ctx, locale), post),
	}, true
}

// Category builds a category page.
func (p *Pages) Category(ctx context.Context, slug, locale string) (CategoryPage, bool) {
	category, ok := p.repo.Category(ctx, slug, locale)
	if !ok {
		return CategoryPage{}, false
	}
	return CategoryPage{
		Locale:        locale,
		Category:      category,
		Posts:         p.repo.PostsByCategory(ctx, category.Name, locale),
		AllCategories: p.repo.Categories(ctx, locale),
	}, true
}

// Portfolio builds the portfolio listing.
func (p *Pages) Portfolio(ctx context.Context, locale string) PortfolioPage {
	return PortfolioPage{
		Locale:       locale,
		Items:        p.repo.PortfolioItems(ctx, locale),
		Testimonials: p.repo.Testimonials(ctx, locale),
	}
}

// PortfolioItem builds a portfolio item page.
func (p *Pages) PortfolioItem(ctx context.Context, slug, locale string) (PortfolioItemPage, bool) {
	item, ok := p.repo.PortfolioItem(ctx, slug, locale)
	if !ok {
		return PortfolioItemPage{}, false
	}
	return PortfolioItemPage{
		Locale:  locale,
		Item:    item,
		Related: content.RelatedPortfolioItems(p.repo.PortfolioItems(ctx, locale), item),
	}, true
}

// Services builds the services listing.
func (p *Pages) Services(ctx context.Context, locale string) ServicesPage {
	return ServicesPage{Locale: locale, Services: p.repo.Services(ctx, locale)}
}

// Service builds a service page.
func (p *Pages) Service(ctx context.Context, slug, locale string) (ServicePage, bool) {
	svc, ok := p.repo.Service(ctx, slug, locale)
	if !ok {
		return ServicePage{}, false
	}
	return ServicePage{
		Locale:  locale,
		Service: svc,
		Related: content.RelatedServices(p.repo.Services(ctx, locale), svc),
	}, true
}

// Testimonials builds the testimonials page.
func (p *Pages) Testimonials(ctx context.Context, locale string) TestimonialsPage {
	return TestimonialsPage{Locale: locale, Testimonials: p.repo.Testimonials(ctx, locale)}
}

// About builds the about page.
func (p *Pages) About(ctx context.Context, locale string) (AboutPage, bool) {
	about, ok := p.repo.About(ctx, locale)
	if !ok {
		return AboutPage{}, false
	}
	return AboutPage{Locale: locale, About: about}, true
}

// Search runs a cross-collection search.
func (p *Pages) Search(ctx context.Context, query, locale string) SearchPage {
	results := search.Search(query, locale,
		p.repo.Posts(ctx, locale),
		p.repo.PortfolioItems(ctx, locale),
		p.repo.Services(ctx, locale),
	)
	page := SearchPage{Locale: locale, Query: query, Results: results, Empty: len(results) == 0}
	if page.Empty {
		page.EmptyMessage = i18n.T(locale, "search.noResults", query)
	}
	return page
}

// SearchIndex returns a search record for every entry in locale.
func (p *Pages) SearchIndex(ctx context.Context, locale string) []model.SearchResult {
	return search.Index(locale,
		p.repo.Posts(ctx, locale),
		p.repo.PortfolioItems(ctx, locale),
		p.repo.Services(ctx, locale),
	)
}
