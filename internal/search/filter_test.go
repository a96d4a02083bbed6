// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package search

import (
	"reflect"
	"testing"

	"github.com/olegiv/quillfolio/internal/model"
)

var testCategories = []model.Category{
	{Name: "Copywriting", Slug: "copywriting"},
	{Name: "Marketing", Slug: "marketing"},
	{Name: "SEO", Slug: "seo"},
	{Name: "Empty", Slug: "empty"},
}

func testPosts() []model.BlogPost {
	return []model.BlogPost{
		{Slug: "a", Title: "Email Marketing Strategy", Category: "Marketing", Tags: []string{"email"}, Featured: true, Date: "2024-01-01"},
		{Slug: "b", Title: "Copywriting Tips", Category: "Copywriting", Excerpt: "Write better headlines", Date: "2024-02-01"},
		{Slug: "c", Title: "Landing Pages", Category: "Marketing", Content: "<p>Conversion-focused COPY</p>", Date: "2024-03-01"},
		{Slug: "d", Title: "Keyword Research", Category: "SEO", Tags: []string{"Search", "Google"}, Date: "2024-04-01"},
		{Slug: "e", Title: "Viết Quảng Cáo", Category: "Marketing", Date: "2024-05-01"},
	}
}

func slugs(posts []model.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestFilterByCategories(t *testing.T) {
	posts := testPosts()

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"empty selection keeps everything", nil, []string{"a", "b", "c", "d", "e"}},
		{"single category", []string{"copywriting"}, []string{"b"}},
		{"any of several", []string{"seo", "copywriting"}, []string{"b", "d"}},
		{"unknown slug skipped", []string{"nope", "seo"}, []string{"d"}},
		{"only unknown slugs", []string{"nope"}, []string{}},
		{"category without posts", []string{"empty"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugs(FilterByCategories(posts, tt.selected, testCategories))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterByCategories(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestFilterByCategoriesResolvesNames(t *testing.T) {
	posts := []model.BlogPost{
		{Slug: "x", Category: "Copywriting"},
		{Slug: "y", Category: "copywriting"},
	}
	cats := []model.Category{{Slug: "copywriting", Name: "Copywriting"}}

	got := slugs(FilterByCategories(posts, []string{"copywriting"}, cats))
	if !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("FilterByCategories() = %v, want [x]", got)
	}
}

func TestFilterByQuery(t *testing.T) {
	posts := testPosts()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", []string{"a", "b", "c", "d", "e"}},
		{"whitespace query", "   ", []string{"a", "b", "c", "d", "e"}},
		{"title any case", "EMAIL", []string{"a"}},
		{"excerpt", "headlines", []string{"b"}},
		{"content", "conversion", []string{"c"}},
		{"tag", "google", []string{"d"}},
		{"category", "marketing", []string{"a", "c", "e"}},
		{"substring across fields", "copy", []string{"b", "c"}},
		{"vietnamese capitals", "viết quảng", []string{"e"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugs(FilterByQuery(posts, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterByQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterByQueryFindsEveryTitleSubstring(t *testing.T) {
	posts := testPosts()
	for _, p := range posts {
		r := []rune(p.Title)
		for _, sub := range []string{p.Title, string(r[:3]), string(r[len(r)-3:])} {
			found := false
			for _, got := range FilterByQuery(posts, sub) {
				if got.Slug == p.Slug {
					found = true
				}
			}
			if !found {
				t.Errorf("FilterByQuery(%q) does not include %q", sub, p.Slug)
			}
		}
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	posts := testPosts()

	got := slugs(Filter(posts, testCategories, State{Categories: []string{"marketing"}, Query: "email"}))
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Filter() = %v, want [a]", got)
	}

	got = slugs(Filter(posts, testCategories, State{Categories: []string{"seo"}, Query: "email"}))
	if len(got) != 0 {
		t.Errorf("Filter() = %v, want empty", got)
	}

	got = slugs(Filter(posts, testCategories, State{}))
	if len(got) != len(posts) {
		t.Errorf("Filter(zero state) = %v, want all posts", got)
	}
}

func TestRankCategories(t *testing.T) {
	ranked := RankCategories(testPosts(), testCategories)

	var got []string
	for _, c := range ranked {
		got = append(got, c.Slug)
	}
	if want := []string{"marketing", "copywriting", "seo"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RankCategories() = %v, want %v", got, want)
	}
	if ranked[0].Count != 3 || ranked[0].Name != "Marketing" {
		t.Errorf("ranked[0] = %+v", ranked[0])
	}
}

func TestCountPosts(t *testing.T) {
	counts := CountPosts(testPosts(), testCategories)
	want := map[string]int{"copywriting": 1, "marketing": 3, "seo": 1, "empty": 0}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountPosts() = %v, want %v", counts, want)
	}
}

func TestStateActive(t *testing.T) {
	if (State{}).Active() {
		t.Error("zero State should be inactive")
	}
	if (State{Query: "  "}).Active() {
		t.Error("blank query should be inactive")
	}
	if !(State{Query: "x"}).Active() || !(State{Categories: []string{"a"}}).Active() {
		t.Error("State with query or categories should be active")
	}
}
