// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package search

import "github.com/olegiv/quillfolio/internal/model"

// Search matches query against posts, portfolio items and services and
// returns the hits in that order, each collection in its input order.
//
// Matching is a case-insensitive substring test. An empty query matches
// every entry.
func Search(query, locale string, posts []model.BlogPost, items []model.PortfolioItem, services []model.Service) []model.SearchResult {
	m := newMatcher(query)
	results := make([]model.SearchResult, 0)

	for _, p := range posts {
		if m.any(p.Title, p.Excerpt, p.Content) || m.any(p.Tags...) {
			results = append(results, PostResult(p, locale))
		}
	}
	for _, i := range items {
		if m.any(i.Title, i.Description, i.Content) {
			results = append(results, PortfolioResult(i, locale))
		}
	}
	for _, s := range services {
		if m.any(s.Title, s.Description) || m.any(s.Features...) {
			results = append(results, ServiceResult(s, locale))
		}
	}
	return results
}

// Index converts every entry into a search record, in Search order.
func Index(locale string, posts []model.BlogPost, items []model.PortfolioItem, services []model.Service) []model.SearchResult {
	return Search("", locale, posts, items, services)
}

// PostResult builds the search record for a post.
func PostResult(p model.BlogPost, locale string) model.SearchResult {
	return model.SearchResult{
		Type:     model.ResultTypePost,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Href:     Href(locale, "blog", p.Slug),
		Category: p.Category,
		Date:     p.Date,
	}
}

// PortfolioResult builds the search record for a portfolio item.
func PortfolioResult(i model.PortfolioItem, locale string) model.SearchResult {
	return model.SearchResult{
		Type:     model.ResultTypePortfolio,
		Title:    i.Title,
		Excerpt:  i.Description,
		Href:     Href(locale, "portfolio", i.Slug),
		Category: i.Category,
		Date:     i.Date,
	}
}

// ServiceResult builds the search record for a service.
func ServiceResult(s model.Service, locale string) model.SearchResult {
	return model.SearchResult{
		Type:     model.ResultTypeService,
		Title:    s.Title,
		Excerpt:  s.Description,
		Href:     Href(locale, "services", s.Slug),
		Category: s.Category,
	}
}

// Href returns the site path of an entry: /<locale>/<section>/<slug>.
func Href(locale, section, slug string) string {
	return "/" + locale + "/" + section + "/" + slug
}
