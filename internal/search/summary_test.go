// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package search

import (
	"testing"

	"github.com/olegiv/quillfolio/internal/i18n"
)

func TestSummarize(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	tests := []struct {
		name    string
		locale  string
		state   State
		count   int
		visible bool
		empty   bool
		text    string
	}{
		{"no filter", "en", State{}, 5, false, false, ""},
		{"query only", "en", State{Query: "email"}, 2, true, false, `Found 2 posts matching "email"`},
		{"one result", "en", State{Query: "email"}, 1, true, false, `Found 1 post matching "email"`},
		{"query and category", "en", State{Query: "email", Categories: []string{"marketing"}}, 1, true, false, `Found 1 post matching "email" in Marketing`},
		{"blank query with category", "en", State{Query: "  ", Categories: []string{"marketing"}}, 3, true, false, "Found 3 posts in Marketing"},
		{"category only", "en", State{Categories: []string{"marketing"}}, 3, true, false, "Found 3 posts in Marketing"},
		{"several categories", "en", State{Categories: []string{"marketing", "seo"}}, 4, true, false, "Found 4 posts in 2 categories"},
		{"unknown category", "en", State{Categories: []string{"nope"}}, 0, true, true, "Found 0 posts"},
		{"vietnamese", "vi", State{Query: "email", Categories: []string{"seo"}}, 1, true, false, `Tìm thấy 1 bài viết khớp với "email" trong SEO`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.locale, tt.state, tt.count, testCategories)
			if s.Visible != tt.visible {
				t.Errorf("Visible = %v, want %v", s.Visible, tt.visible)
			}
			if s.Empty != tt.empty {
				t.Errorf("Empty = %v, want %v", s.Empty, tt.empty)
			}
			if s.Text != tt.text {
				t.Errorf("Text = %q, want %q", s.Text, tt.text)
			}
			if s.Empty && s.EmptyMessage == "" {
				t.Error("EmptyMessage should be set for empty results")
			}
		})
	}
}
