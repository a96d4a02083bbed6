// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package search

import (
	"strings"

	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/model"
)

// Summary describes a filtered post listing for display.
type Summary struct {
	// Visible is false when no filter is active and the line is not shown.
	Visible bool   `json:"visible"`
	Count   int    `json:"count"`
	Text    string `json:"text"`
	// Empty marks a listing with no matches; EmptyMessage explains it.
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// Summarize builds the localized results line for count matching posts,
// such as `Found 2 posts matching "email" in Marketing`.
func Summarize(locale string, state State, count int, categories []model.Category) Summary {
	s := Summary{
		Visible: state.Active(),
		Count:   count,
		Empty:   count == 0,
	}
	if s.Empty {
		s.EmptyMessage = i18n.T(locale, "blog.noResults")
	}
	if !s.Visible {
		return s
	}

	key := "blog.found.other"
	if count == 1 {
		key = "blog.found.one"
	}
	text := i18n.T(locale, key, count)

	if strings.TrimSpace(state.Query) != "" {
		text += i18n.T(locale, "blog.matching", state.Query)
	}
	if label := categoryLabel(locale, state.Categories, categories); label != "" {
		text += i18n.T(locale, "blog.in") + label
	}

	s.Text = text
	return s
}

// categoryLabel names the selection: the category name for one slug, a
// count for several.
func categoryLabel(locale string, slugs []string, categories []model.Category) string {
	switch len(slugs) {
	case 0:
		return ""
	case 1:
		for _, c := range categories {
			if c.Slug == slugs[0] {
				return c.Name
			}
		}
		return ""
	default:
		return i18n.T(locale, "blog.categoriesCount", len(slugs))
	}
}
