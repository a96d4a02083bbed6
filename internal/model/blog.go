// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content records served by the site: blog posts,
// categories, portfolio items, services, testimonials and the about page.
// Records are plain values decoded from the content files; nothing mutates
// them after loading.
package model

// BlogPost is a Markdown post from blog/posts/<slug>.md.
// Content holds the rendered HTML body.
type BlogPost struct {
	Slug     string   `json:"slug" yaml:"-" validate:"required"`
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content" yaml:"-"`
	Date     string   `json:"date" yaml:"date"`
	Author   string   `json:"author" yaml:"author"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
	Featured bool     `json:"featured" yaml:"featured"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	Image    string   `json:"image,omitempty" yaml:"image"`
}

// Category is a blog category from blog/categories/<slug>.json.
// Posts reference categories by Name, not by Slug.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}
