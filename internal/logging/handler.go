// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the application logger and a slog handler that
// remembers recent warnings so that content problems which are absorbed
// by the content layer stay visible on the health endpoint.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Entry is a retained log record.
type Entry struct {
	Time     time.Time         `json:"time"`
	Level    string            `json:"level"`
	Message  string            `json:"message"`
	Category string            `json:"category"`
	Attrs    map[string]string `json:"attrs,omitempty"`
}

// Event categories.
const (
	CategoryContent = "content"
	CategoryCache   = "cache"
	CategoryHTTP    = "http"
	CategoryExport  = "export"
	CategorySystem  = "system"
)

// ParseLevel converts a config string to a slog level; unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text or JSON logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// recorderLog is the ring buffer shared by a Recorder and its derived handlers.
type recorderLog struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// Recorder is a slog.Handler that wraps another handler and also keeps the
// most recent records at or above a minimum level.
type Recorder struct {
	inner slog.Handler
	log   *recorderLog
	level slog.Level
	attrs []slog.Attr
}

// NewRecorder creates a Recorder keeping up to size WARN+ records.
func NewRecorder(inner slog.Handler, size int) *Recorder {
	return NewRecorderWithLevel(inner, size, slog.LevelWarn)
}

// NewRecorderWithLevel creates a Recorder with a custom minimum level.
func NewRecorderWithLevel(inner slog.Handler, size int, level slog.Level) *Recorder {
	if size <= 0 {
		size = 50
	}
	return &Recorder{
		inner: inner,
		log:   &recorderLog{entries: make([]Entry, size)},
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *Recorder) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level) || level >= h.level
}

// Handle implements slog.Handler.
func (h *Recorder) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.inner.Enabled(ctx, r.Level) {
		err = h.inner.Handle(ctx, r)
	}
	if r.Level >= h.level {
		h.log.add(h.entry(r))
	}
	return err
}

// WithAttrs implements slog.Handler.
func (h *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *Recorder) WithGroup(name string) slog.Handler {
	return &Recorder{
		inner: h.inner.WithGroup(name),
		log:   h.log,
		level: h.level,
		attrs: h.attrs,
	}
}

// Recent returns retained records, oldest first.
func (h *Recorder) Recent() []Entry {
	return h.log.snapshot()
}

func (h *Recorder) entry(r slog.Record) Entry {
	e := Entry{
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
		Attrs:   make(map[string]string),
	}

	collect := func(a slog.Attr) bool {
		if a.Key == "category" {
			e.Category = a.Value.String()
			return true
		}
		e.Attrs[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	if e.Category == "" {
		e.Category = inferCategory(r.Message)
	}
	if len(e.Attrs) == 0 {
		e.Attrs = nil
	}
	return e
}

// inferCategory guesses a category from the message text.
func inferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "content") || strings.Contains(msg, "post") || strings.Contains(msg, "locale"):
		return CategoryContent
	case strings.Contains(msg, "cache") || strings.Contains(msg, "redis"):
		return CategoryCache
	case strings.Contains(msg, "export"):
		return CategoryExport
	case strings.Contains(msg, "request") || strings.Contains(msg, "http"):
		return CategoryHTTP
	default:
		return CategorySystem
	}
}

func (l *recorderLog) add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.next] = e
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

func (l *recorderLog) snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.full {
		return append([]Entry(nil), l.entries[:l.next]...)
	}
	out := make([]Entry, 0, len(l.entries))
	out = append(out, l.entries[l.next:]...)
	return append(out, l.entries[:l.next]...)
}
