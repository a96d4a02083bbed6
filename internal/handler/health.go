// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/quillfolio/internal/cache"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/version"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	recorder  *logging.Recorder
	cache     cache.Cache
	cacheInfo cache.Info
	version   version.Info
	locales   []string
	startTime time.Time
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithRecorder reports recent warnings from rec.
func WithRecorder(rec *logging.Recorder) HealthOption {
	return func(h *HealthHandler) {
		h.recorder = rec
	}
}

// WithCache reports the Markdown cache backend and statistics.
func WithCache(c cache.Cache, info cache.Info) HealthOption {
	return func(h *HealthHandler) {
		h.cache = c
		h.cacheInfo = info
	}
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(v version.Info, locales []string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		version:   v,
		locales:   locales,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthStatus is the health response body.
type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Uptime    string          `json:"uptime"`
	Version   version.Info    `json:"version"`
	Locales   []string        `json:"locales"`
	Cache     *CacheStatus    `json:"cache,omitempty"`
	Recent    []logging.Entry `json:"recent_events"`
	System    *SystemInfo     `json:"system,omitempty"`
}

// CacheStatus describes the Markdown render cache.
type CacheStatus struct {
	cache.Info
	Stats *cache.Stats `json:"stats,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
}

// Health handles GET /health. The service is "degraded" when recent
// warnings were recorded, which usually means content files failed to load.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Locales:   h.locales,
		Recent:    []logging.Entry{},
	}

	if h.recorder != nil {
		if recent := h.recorder.Recent(); len(recent) > 0 {
			status.Recent = recent
			status.Status = "degraded"
		}
	}

	if h.cache != nil {
		cs := &CacheStatus{Info: h.cacheInfo}
		if sp, ok := h.cache.(cache.StatsProvider); ok {
			stats := sp.Stats()
			cs.Stats = &stats
		}
		status.Cache = cs
	}

	if r.URL.Query().Get("verbose") == "true" {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		status.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAllocMB:   m.Alloc / 1024 / 1024,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(status)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "alive",
	})
}
