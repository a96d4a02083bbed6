// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for locale routing, request
// logging and response headers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyLocale holds the locale code of the current request.
const ContextKeyLocale ContextKey = "locale"

// LocaleCookieName is the cookie name for the visitor's locale preference.
const LocaleCookieName = "qf_locale"

// LocaleParam is the chi URL parameter carrying the locale prefix.
const LocaleParam = "locale"

// Locales is the set of locales the site serves.
type Locales struct {
	codes   []string
	def     string
	matcher language.Matcher
}

// NewLocales creates a Locales from codes. The default locale is matched
// first when negotiation is inconclusive and is added to codes if missing.
func NewLocales(codes []string, defaultLocale string) *Locales {
	def := strings.ToLower(strings.TrimSpace(defaultLocale))
	l := &Locales{def: def}

	seen := map[string]bool{}
	tags := make([]language.Tag, 0, len(codes)+1)
	for _, code := range append([]string{def}, codes...) {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		l.codes = append(l.codes, code)
		tags = append(tags, language.Make(code))
	}
	l.matcher = language.NewMatcher(tags)
	return l
}

// Codes returns the supported locale codes, default first.
func (l *Locales) Codes() []string {
	return append([]string(nil), l.codes...)
}

// Default returns the default locale code.
func (l *Locales) Default() string {
	return l.def
}

// Lookup returns the canonical code for code if it is supported.
func (l *Locales) Lookup(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, c := range l.codes {
		if c == code {
			return c, true
		}
	}
	return "", false
}

// Preferred picks a locale for a request without a locale prefix.
// Priority order:
// 1. Query parameter ?lang=XX
// 2. Locale cookie
// 3. Accept-Language header
// 4. Default locale
func (l *Locales) Preferred(r *http.Request) string {
	if code, ok := l.Lookup(r.URL.Query().Get("lang")); ok {
		return code
	}
	if cookie, err := r.Cookie(LocaleCookieName); err == nil {
		if code, ok := l.Lookup(cookie.Value); ok {
			return code
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if code, ok := l.match(accept); ok {
			return code
		}
	}
	return l.def
}

// match negotiates an Accept-Language header against the supported set.
func (l *Locales) match(accept string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := l.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(l.codes) {
		return "", false
	}
	return l.codes[idx], true
}

// Middleware validates the {locale} URL parameter and stores it in the
// request context. Unsupported locales are passed to notFound. An explicit
// ?lang=XX naming a supported locale updates the preference cookie.
func (l *Locales) Middleware(notFound http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code, ok := l.Lookup(chi.URLParam(r, LocaleParam))
			if !ok {
				notFound.ServeHTTP(w, r)
				return
			}
			if lang, ok := l.Lookup(r.URL.Query().Get("lang")); ok {
				SetLocaleCookie(w, lang)
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), code)))
		})
	}
}

// Redirect sends requests for "/" to the preferred locale's home path.
func (l *Locales) Redirect(w http.ResponseWriter, r *http.Request) {
	code := l.Preferred(r)
	if r.URL.Query().Get("lang") != "" {
		SetLocaleCookie(w, code)
	}
	http.Redirect(w, r, "/"+code, http.StatusFound)
}

// WithLocale returns a copy of ctx carrying code.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, code)
}

// GetLocale returns the locale stored in the request context, or "".
func GetLocale(r *http.Request) string {
	code, _ := r.Context().Value(ContextKeyLocale).(string)
	return code
}

// SetLocaleCookie sets the locale preference cookie.
func SetLocaleCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
