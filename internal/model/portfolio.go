// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// PortfolioItem is a writing sample listed in portfolio/writing-samples.json.
type PortfolioItem struct {
	Slug        string   `json:"slug" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link,omitempty"`
	Content     string   `json:"content,omitempty"`
	Client      string   `json:"client,omitempty"`
	Results     string   `json:"results,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Date        string   `json:"date,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// PortfolioDocument is the on-disk shape of writing-samples.json.
type PortfolioDocument struct {
	Items []PortfolioItem `json:"items"`
}

// Testimonial is a client quote. Testimonials have no identity of their own;
// their order is the order in testimonials.json.
type Testimonial struct {
	Author string `json:"author" validate:"required"`
	Role   string `json:"role"`
	Quote  string `json:"quote" validate:"required"`
	Avatar string `json:"avatar,omitempty"`
}
