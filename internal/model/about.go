// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// AboutContent is the single about-page record of a locale.
type AboutContent struct {
	Name         string       `json:"name" validate:"required"`
	Tagline      string       `json:"tagline"`
	Introduction string       `json:"introduction,omitempty"`
	Bio          string       `json:"bio"`
	Image        string       `json:"image,omitempty"`
	Skills       []string     `json:"skills"`
	Experience   []Experience `json:"experience" validate:"dive"`
}

// Experience is one entry of the about-page work history.
type Experience struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Years       string `json:"years"`
	Description string `json:"description,omitempty"`
}
