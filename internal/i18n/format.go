// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"strings"
	"time"
)

const dateLayoutKey = "date.layout"

// defaultDateLayout is used before Init or when no layout is translated.
const defaultDateLayout = "January 2, 2006"

// dateInputLayouts are tried in order when parsing stored dates.
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders an ISO date in the long form used by lang.
// Values that do not parse are returned unchanged.
func FormatDate(lang, date string) string {
	s := strings.TrimSpace(date)
	var t time.Time
	var err error
	for _, layout := range dateInputLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return date
	}

	layout := T(lang, dateLayoutKey)
	if layout == dateLayoutKey {
		layout = defaultDateLayout
	}
	return t.Format(layout)
}
