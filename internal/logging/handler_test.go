// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestRecorder_KeepsWarnAndAbove(t *testing.T) {
	rec := NewRecorder(discardHandler{}, 10)
	logger := slog.New(rec)

	logger.Info("content loaded", "locale", "en")
	logger.Warn("malformed content file", "path", "vi/services/services-list.json")
	logger.Error("export failed", "error", "disk full")

	got := rec.Recent()
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d entries, want 2", len(got))
	}
	if got[0].Message != "malformed content file" || got[0].Level != "WARN" {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[0].Category != CategoryContent {
		t.Errorf("first entry category = %q, want %q", got[0].Category, CategoryContent)
	}
	if got[0].Attrs["path"] != "vi/services/services-list.json" {
		t.Errorf("first entry attrs = %v", got[0].Attrs)
	}
	if got[1].Category != CategoryExport {
		t.Errorf("second entry category = %q, want %q", got[1].Category, CategoryExport)
	}
}

func TestRecorder_ExplicitCategory(t *testing.T) {
	rec := NewRecorder(discardHandler{}, 10)
	slog.New(rec).Warn("something odd", "category", CategoryCache)

	got := rec.Recent()
	if len(got) != 1 || got[0].Category != CategoryCache {
		t.Fatalf("Recent() = %+v, want one cache entry", got)
	}
	if _, ok := got[0].Attrs["category"]; ok {
		t.Error("category attribute should not be duplicated in attrs")
	}
}

func TestRecorder_RingBufferWraps(t *testing.T) {
	rec := NewRecorder(discardHandler{}, 3)
	logger := slog.New(rec)

	for i := range 5 {
		logger.Warn(fmt.Sprintf("warning %d", i))
	}

	got := rec.Recent()
	if len(got) != 3 {
		t.Fatalf("Recent() returned %d entries, want 3", len(got))
	}
	for i, want := range []string{"warning 2", "warning 3", "warning 4"} {
		if got[i].Message != want {
			t.Errorf("entry %d = %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestRecorder_WithAttrsSharesBuffer(t *testing.T) {
	rec := NewRecorder(discardHandler{}, 10)
	logger := slog.New(rec).With("component", "content")

	logger.Warn("post skipped")

	got := rec.Recent()
	if len(got) != 1 {
		t.Fatalf("Recent() returned %d entries, want 1", len(got))
	}
	if got[0].Attrs["component"] != "content" {
		t.Errorf("attrs = %v, want component=content", got[0].Attrs)
	}
}

func TestRecorder_ForwardsToInner(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})
	rec := NewRecorder(inner, 10)
	logger := slog.New(rec)

	logger.Warn("below inner level")
	logger.Error("at inner level")

	if strings.Contains(buf.String(), "below inner level") {
		t.Error("inner handler received a record below its level")
	}
	if !strings.Contains(buf.String(), "at inner level") {
		t.Error("inner handler did not receive the error record")
	}
	if len(rec.Recent()) != 2 {
		t.Errorf("Recent() = %d entries, want 2", len(rec.Recent()))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info", "json").Info("hello", "locale", "vi")

	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("json logger wrote %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"locale":"vi"`) {
		t.Errorf("json logger output missing attr: %q", buf.String())
	}
}
