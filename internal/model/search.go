// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Search result types.
const (
	ResultTypePost      = "post"
	ResultTypePortfolio = "portfolio"
	ResultTypeService   = "service"
)

// SearchResult is one hit of the site-wide search.
type SearchResult struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Href     string `json:"href"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"`
}
