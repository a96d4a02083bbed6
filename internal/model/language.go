// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Language text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Language describes a site locale for the language switcher and the export index.
type Language struct {
	Code       string `json:"code"`        // ISO 639-1: en, vi
	Name       string `json:"name"`        // English, Vietnamese
	NativeName string `json:"native_name"` // English, Tiếng Việt
	Direction  string `json:"direction"`   // ltr, rtl
	IsDefault  bool   `json:"is_default"`
}

// IsRTL returns true if the language is right-to-left.
func (l *Language) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// CommonLanguages provides display names for locales the site may be configured with.
var CommonLanguages = []struct {
	Code       string
	Name       string
	NativeName string
	Direction  string
}{
	{"en", "English", "English", "ltr"},
	{"vi", "Vietnamese", "Tiếng Việt", "ltr"},
	{"fr", "French", "Français", "ltr"},
	{"de", "German", "Deutsch", "ltr"},
	{"ja", "Japanese", "日本語", "ltr"},
	{"ko", "Korean", "한국어", "ltr"},
	{"zh", "Chinese", "中文", "ltr"},
	{"th", "Thai", "ไทย", "ltr"},
}

// LanguageFor returns the descriptor for a locale code. Unknown codes get the
// code itself as their display name.
func LanguageFor(code string, isDefault bool) Language {
	for _, l := range CommonLanguages {
		if l.Code == code {
			return Language{
				Code:       l.Code,
				Name:       l.Name,
				NativeName: l.NativeName,
				Direction:  l.Direction,
				IsDefault:  isDefault,
			}
		}
	}
	return Language{Code: code, Name: code, NativeName: code, Direction: DirectionLTR, IsDefault: isDefault}
}
