// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"
)

func testLocales() *Locales {
	return NewLocales([]string{"en", "vi"}, "en")
}

func TestNewLocales(t *testing.T) {
	l := NewLocales([]string{" VI ", "en", "vi"}, "EN")

	if got := l.Codes(); !reflect.DeepEqual(got, []string{"en", "vi"}) {
		t.Errorf("Codes() = %v, want [en vi]", got)
	}
	if l.Default() != "en" {
		t.Errorf("Default() = %q, want en", l.Default())
	}

	l = NewLocales([]string{"vi"}, "en")
	if got := l.Codes(); !reflect.DeepEqual(got, []string{"en", "vi"}) {
		t.Errorf("Codes() = %v, default should be added", got)
	}
}

func TestLookup(t *testing.T) {
	l := testLocales()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"en", "en", true},
		{"VI", "vi", true},
		{" vi ", "vi", true},
		{"fr", "", false},
		{"", "", false},
		{"en-US", "", false},
	}
	for _, tt := range tests {
		got, ok := l.Lookup(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPreferred(t *testing.T) {
	l := testLocales()

	tests := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   string
	}{
		{"default", "/", "", "", "en"},
		{"query wins", "/?lang=vi", "en", "en-US", "vi"},
		{"unsupported query ignored", "/?lang=fr", "vi", "", "vi"},
		{"cookie", "/", "vi", "en-US", "vi"},
		{"invalid cookie ignored", "/", "xx", "vi-VN,vi;q=0.9", "vi"},
		{"accept language region", "/", "", "vi-VN,en;q=0.5", "vi"},
		{"accept language quality", "/", "", "fr;q=1.0,vi;q=0.8,en;q=0.5", "vi"},
		{"accept language no match", "/", "", "fr,de", "en"},
		{"malformed accept language", "/", "", ";;;", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LocaleCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if got := l.Preferred(req); got != tt.want {
				t.Errorf("Preferred() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	l := testLocales()
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r := chi.NewRouter()
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(l.Middleware(notFound))
		r.Get("/page", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(GetLocale(r)))
		})
	})

	tests := []struct {
		url        string
		wantStatus int
		wantBody   string
		wantCookie string
	}{
		{"/en/page", http.StatusOK, "en", ""},
		{"/VI/page", http.StatusOK, "vi", ""},
		{"/fr/page", http.StatusNotFound, "", ""},
		{"/en/page?lang=vi", http.StatusOK, "en", "vi"},
		{"/en/page?lang=xx", http.StatusOK, "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rr.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rr.Body.String(), tt.wantBody)
			}
			var cookie string
			for _, c := range rr.Result().Cookies() {
				if c.Name == LocaleCookieName {
					cookie = c.Value
				}
			}
			if cookie != tt.wantCookie {
				t.Errorf("cookie = %q, want %q", cookie, tt.wantCookie)
			}
		})
	}
}

func TestRedirect(t *testing.T) {
	l := testLocales()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "vi")
	rr := httptest.NewRecorder()
	l.Redirect(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if loc := rr.Header().Get("Location"); loc != "/vi" {
		t.Errorf("Location = %q, want /vi", loc)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("redirect without ?lang should not set a cookie")
	}

	rr = httptest.NewRecorder()
	l.Redirect(rr, httptest.NewRequest(http.MethodGet, "/?lang=vi", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "vi" {
		t.Errorf("cookies = %v, want qf_locale=vi", cookies)
	}
}

func TestGetLocale(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetLocale(req); got != "" {
		t.Errorf("GetLocale() = %q, want empty", got)
	}

	req = req.WithContext(WithLocale(req.Context(), "vi"))
	if got := GetLocale(req); got != "vi" {
		t.Errorf("GetLocale() = %q, want vi", got)
	}
}

func TestSetLocaleCookie(t *testing.T) {
	rr := httptest.NewRecorder()

	SetLocaleCookie(rr, "vi")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Name != LocaleCookieName {
		t.Errorf("Cookie name = %q, want %q", cookie.Name, LocaleCookieName)
	}
	if cookie.Value != "vi" {
		t.Errorf("Cookie value = %q, want %q", cookie.Value, "vi")
	}
	if cookie.Path != "/" {
		t.Errorf("Cookie path = %q, want %q", cookie.Path, "/")
	}
	if !cookie.HttpOnly {
		t.Error("Cookie should be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("Cookie SameSite = %v, want %v", cookie.SameSite, http.SameSiteLaxMode)
	}
}
