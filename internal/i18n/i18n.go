// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the site's UI strings in every supported language
// and matches visitor language preferences against the active locales.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// Message represents a single translatable message.
type Message struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	Translation string `json:"translation"`
}

// MessageFile represents the structure of a messages JSON file.
type MessageFile struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// Catalog holds all translations for all supported languages.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string // lang -> key -> translation
	matcher      language.Matcher
	active       []language.Tag
	defaultLang  string
	logger       *slog.Logger
}

// catalog is the global catalog instance.
var catalog *Catalog

// SupportedLanguages lists the languages we ship UI strings for.
var SupportedLanguages = []string{"en", "vi"}

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

// Init loads the embedded catalogs. All supported languages start active.
func Init(logger *slog.Logger) error {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		defaultLang:  DefaultLanguage,
		logger:       logger,
	}

	for _, lang := range SupportedLanguages {
		if err := c.loadLanguage(lang); err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}
	c.setActive(SupportedLanguages)

	catalog = c
	if logger != nil {
		logger.Info("i18n initialized", "languages", SupportedLanguages)
	}
	return nil
}

// loadLanguage loads translations for a specific language.
func (c *Catalog) loadLanguage(lang string) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[lang] = make(map[string]string, len(msgFile.Messages))
	for _, msg := range msgFile.Messages {
		c.translations[lang][msg.ID] = msg.Translation
	}

	if c.logger != nil {
		c.logger.Debug("loaded translations", "language", lang, "count", len(msgFile.Messages))
	}
	return nil
}

func (c *Catalog) setActive(codes []string) {
	c.mu.RLock()
	def := c.defaultLang
	c.mu.RUnlock()

	tags := make([]language.Tag, 0, len(codes)+1)
	// The default goes first so the matcher falls back to it.
	ordered := append([]string{def}, codes...)
	seen := make(map[string]bool)
	for _, code := range ordered {
		code = strings.ToLower(strings.TrimSpace(code))
		if seen[code] {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		seen[code] = true
		tags = append(tags, tag)
	}

	c.mu.Lock()
	c.active = tags
	c.matcher = language.NewMatcher(tags)
	c.mu.Unlock()
}

// SetActiveLanguages restricts language matching to the given locale codes.
func SetActiveLanguages(codes []string) {
	if catalog == nil {
		return
	}
	catalog.setActive(codes)
}

// SetDefaultLanguage changes the fallback language for translations and matching.
func SetDefaultLanguage(lang string) {
	if catalog == nil {
		return
	}
	catalog.mu.Lock()
	catalog.defaultLang = strings.ToLower(lang)
	active := make([]string, 0, len(catalog.active))
	for _, t := range catalog.active {
		active = append(active, t.String())
	}
	catalog.mu.Unlock()
	catalog.setActive(active)
}

// T translates a message key to the specified language.
// Missing keys fall back to the default language, then to the key itself.
func T(lang, key string, args ...any) string {
	if catalog == nil {
		return key
	}

	catalog.mu.RLock()
	translation, ok := catalog.translations[lang][key]
	if !ok {
		translation, ok = catalog.translations[catalog.defaultLang][key]
		if ok && catalog.logger != nil && lang != catalog.defaultLang {
			catalog.logger.Debug("missing translation, using default", "key", key, "lang", lang)
		}
	}
	catalog.mu.RUnlock()

	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(translation, args...)
	}
	return translation
}

// Messages returns a copy of all translations for lang, with default-language
// entries filling any gaps.
func Messages(lang string) map[string]string {
	if catalog == nil {
		return map[string]string{}
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	out := make(map[string]string)
	for k, v := range catalog.translations[catalog.defaultLang] {
		out[k] = v
	}
	for k, v := range catalog.translations[lang] {
		out[k] = v
	}
	return out
}

// GetSupportedLanguages returns the languages with a UI catalog.
func GetSupportedLanguages() []string {
	return SupportedLanguages
}

// MatchLanguage finds the best matching active language for an
// Accept-Language header or a bare language code.
func MatchLanguage(acceptLang string) string {
	if catalog == nil {
		return DefaultLanguage
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return catalog.defaultLang
		}
		tags = []language.Tag{tag}
	}

	_, idx, confidence := catalog.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(catalog.active) {
		return catalog.defaultLang
	}
	base, _ := catalog.active[idx].Base()
	return base.String()
}

// IsSupported checks if a language code has a UI catalog.
func IsSupported(lang string) bool {
	return slices.Contains(SupportedLanguages, strings.ToLower(lang))
}

// TranslationCount returns the number of translations loaded for a language.
func TranslationCount(lang string) int {
	if catalog == nil {
		return 0
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return len(catalog.translations[lang])
}
