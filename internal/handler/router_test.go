// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/quillfolio/internal/content"
	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/logging"
	"github.com/olegiv/quillfolio/internal/middleware"
	"github.com/olegiv/quillfolio/internal/service"
	"github.com/olegiv/quillfolio/internal/testutil"
	"github.com/olegiv/quillfolio/internal/version"
)

func newTestRouter(t *testing.T, origins []string, isDev bool) http.Handler {
	t.Helper()
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}
	locales := middleware.NewLocales([]string{"en", "vi"}, "en")
	return NewRouter(RouterConfig{
		Content:       NewContentHandler(service.NewPages(testutil.Repository())),
		Health:        NewHealthHandler(version.New("", "", ""), locales.Codes()),
		Locales:       locales,
		Logger:        testutil.TestLoggerSilent(),
		CORSOrigins:   origins,
		IsDevelopment: isDev,
	})
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	return rr
}

func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want object", resp["data"])
	}
	return data
}

func TestContentRoutes(t *testing.T) {
	router := newTestRouter(t, nil, true)

	tests := []struct {
		url     string
		wantKey string
	}{
		{"/en", "featuredPosts"},
		{"/en/", "featuredPosts"},
		{"/vi/blog", "posts"},
		{"/en/blog/copywriting-tips", "post"},
		{"/en/blog/category/marketing", "category"},
		{"/en/portfolio", "items"},
		{"/vi/portfolio/newsletter", "item"},
		{"/en/services", "services"},
		{"/en/services/write-blog", "service"},
		{"/en/testimonials", "testimonials"},
		{"/vi/about", "about"},
		{"/en/search?q=email", "results"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rr := get(t, router, tt.url)
			data := dataOf(t, assertJSONResponse(t, rr, http.StatusOK, true))
			if _, ok := data[tt.wantKey]; !ok {
				t.Errorf("data has no %q key: %v", tt.wantKey, data)
			}
		})
	}
}

func TestNotFoundRoutes(t *testing.T) {
	router := newTestRouter(t, nil, true)

	tests := []struct {
		url     string
		wantMsg string
	}{
		{"/en/blog/missing-slug", "Page not found"},
		{"/vi/blog/missing-slug", "Không tìm thấy trang"},
		{"/en/blog/category/nope", "Page not found"},
		{"/en/portfolio/nope", "Page not found"},
		{"/en/services/nope", "Page not found"},
		{"/fr/blog", "Page not found"},
		{"/en/unknown/path", "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			resp := assertJSONResponse(t, get(t, router, tt.url), http.StatusNotFound, false)
			if resp["error"] != tt.wantMsg {
				t.Errorf("error = %v, want %q", resp["error"], tt.wantMsg)
			}
		})
	}
}

func TestBlogFilterParams(t *testing.T) {
	router := newTestRouter(t, nil, true)

	rr := get(t, router, "/en/blog?q=email&categories=marketing,%20seo,")
	data := dataOf(t, assertJSONResponse(t, rr, http.StatusOK, true))

	posts, _ := data["posts"].([]any)
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(posts))
	}
	filter, _ := data["filter"].(map[string]any)
	cats, _ := filter["categories"].([]any)
	if len(cats) != 2 || cats[0] != "marketing" || cats[1] != "seo" {
		t.Errorf("filter.categories = %v, want [marketing seo]", cats)
	}
	summary, _ := data["summary"].(map[string]any)
	if summary["text"] != `Found 1 post matching "email" in 2 categories` {
		t.Errorf("summary.text = %v", summary["text"])
	}
}

func TestPostRawHTMLPassesThrough(t *testing.T) {
	router := newTestRouter(t, nil, true)

	rr := get(t, router, "/en/blog/copywriting-tips")
	data := dataOf(t, assertJSONResponse(t, rr, http.StatusOK, true))
	post, _ := data["post"].(map[string]any)
	html, _ := post["content"].(string)
	if !strings.Contains(html, `<aside class="tip">Read it aloud.</aside>`) {
		t.Errorf("content = %q, want raw aside element", html)
	}
}

func TestRootRedirect(t *testing.T) {
	router := newTestRouter(t, nil, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if loc := rr.Header().Get("Location"); loc != "/vi" {
		t.Errorf("Location = %q, want /vi", loc)
	}
}

func TestMessages(t *testing.T) {
	router := newTestRouter(t, nil, true)

	data := dataOf(t, assertJSONResponse(t, get(t, router, "/vi/messages"), http.StatusOK, true))
	if data["blog.readMore"] == "Read More" || data["blog.readMore"] == nil {
		t.Errorf("blog.readMore = %v, want Vietnamese text", data["blog.readMore"])
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		isDev   bool
		origin  string
		want    string
	}{
		{"configured origin", []string{"https://site.example"}, false, "https://site.example", "https://site.example"},
		{"other origin rejected", []string{"https://site.example"}, false, "https://evil.example", ""},
		{"development allows any", nil, true, "http://localhost:3000", "*"},
		{"production without origins", nil, false, "https://site.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.origins, tt.isDev)
			req := httptest.NewRequest(http.MethodGet, "/en/services", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/en/blog", nil)
	state := parseState(req)
	if state.Query != "" || state.Categories == nil || len(state.Categories) != 0 {
		t.Errorf("parseState() = %+v, want empty state", state)
	}
}

func TestHealthStaysHealthyAfterClientErrors(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}
	rec := logging.NewRecorder(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}), 10)
	logger := slog.New(rec)
	locales := middleware.NewLocales([]string{"en", "vi"}, "en")
	repo := content.New("", content.WithFS(testutil.SiteFS()), content.WithLogger(logger))
	router := NewRouter(RouterConfig{
		Content: NewContentHandler(service.NewPages(repo)),
		Health:  NewHealthHandler(version.New("", "", ""), locales.Codes(), WithRecorder(rec)),
		Locales: locales,
		Logger:  logger,
	})

	healthStatus := func() string {
		t.Helper()
		rr := get(t, router, "/health")
		var body HealthStatus
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding health: %v", err)
		}
		return body.Status
	}

	if got := healthStatus(); got != "healthy" {
		t.Fatalf("status before requests = %q, want healthy", got)
	}
	for _, url := range []string{"/favicon.ico", "/xx/blog", "/en/blog/no-such-post", "/en/services/nope"} {
		if rr := get(t, router, url); rr.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", url, rr.Code)
		}
	}
	if got := healthStatus(); got != "healthy" {
		t.Errorf("status after client errors = %q, want healthy; recent = %+v", got, rec.Recent())
	}
}
