// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// WordsPerMinute is the reading speed used for read time estimates.
const WordsPerMinute = 200

// DefaultExcerptLength is the excerpt size, in characters, for posts without one.
const DefaultExcerptLength = 150

var stripPolicy = bluemonday.StrictPolicy()

// CalculateReadTime estimates reading time for text as "N min read",
// rounding up and never reporting less than one minute.
func CalculateReadTime(text string) string {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// GenerateExcerpt strips markup from htmlText and truncates the result to
// maxLength characters, appending "..." when anything was cut.
func GenerateExcerpt(htmlText string, maxLength int) string {
	plain := html.UnescapeString(stripPolicy.Sanitize(htmlText))
	plain = strings.Join(strings.Fields(plain), " ")

	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
