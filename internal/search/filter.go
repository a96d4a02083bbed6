// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package search narrows already loaded content by category and free text.
//
// Every function here is pure: it reads its arguments, allocates a new
// result and never touches the file system. Callers own the filter State
// and re-run the functions whenever it changes.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/quillfolio/internal/model"
)

// State is the caller-owned filter selection.
type State struct {
	// Categories holds selected category slugs. Empty means all categories.
	Categories []string `json:"categories"`
	Query      string   `json:"query"`
}

// Active reports whether any filter is applied.
func (s State) Active() bool {
	return len(s.Categories) > 0 || strings.TrimSpace(s.Query) != ""
}

// CategoryCount pairs a category with the number of posts filed under it.
type CategoryCount struct {
	model.Category
	Count int `json:"count"`
}

// Filter applies the category selection and then the query.
func Filter(posts []model.BlogPost, categories []model.Category, state State) []model.BlogPost {
	return FilterByQuery(FilterByCategories(posts, state.Categories, categories), state.Query)
}

// FilterByCategories keeps posts filed under any of the selected category
// slugs. An empty selection returns posts unchanged. Slugs that match no
// category are ignored, so a selection of only unknown slugs matches nothing.
func FilterByCategories(posts []model.BlogPost, slugs []string, categories []model.Category) []model.BlogPost {
	if len(slugs) == 0 {
		return posts
	}

	names := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		for _, c := range categories {
			if c.Slug == slug {
				names[c.Name] = true
				break
			}
		}
	}

	out := make([]model.BlogPost, 0, len(posts))
	for _, p := range posts {
		if names[p.Category] {
			out = append(out, p)
		}
	}
	return out
}

// FilterByQuery keeps posts whose title, excerpt, content, category or any
// tag contains query, ignoring case. A blank query returns posts unchanged.
func FilterByQuery(posts []model.BlogPost, query string) []model.BlogPost {
	if strings.TrimSpace(query) == "" {
		return posts
	}

	m := newMatcher(query)
	out := make([]model.BlogPost, 0, len(posts))
	for _, p := range posts {
		if m.any(p.Title, p.Excerpt, p.Content, p.Category) || m.any(p.Tags...) {
			out = append(out, p)
		}
	}
	return out
}

// CountPosts returns the number of posts per category slug.
func CountPosts(posts []model.BlogPost, categories []model.Category) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		n := 0
		for _, p := range posts {
			if p.Category == c.Name {
				n++
			}
		}
		counts[c.Slug] = n
	}
	return counts
}

// RankCategories orders categories by post count, most first, dropping
// categories without posts. Ties keep their input order.
func RankCategories(posts []model.BlogPost, categories []model.Category) []CategoryCount {
	counts := CountPosts(posts, categories)

	ranked := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		if n := counts[c.Slug]; n > 0 {
			ranked = append(ranked, CategoryCount{Category: c, Count: n})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// matcher does case-insensitive substring tests against one query.
// It holds a cases.Caser and must not be shared between goroutines.
type matcher struct {
	lower cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	m := &matcher{lower: cases.Lower(language.Und)}
	m.query = m.lower.String(query)
	return m
}

// any reports whether one of fields contains the query.
func (m *matcher) any(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(m.lower.String(f), m.query) {
			return true
		}
	}
	return false
}
