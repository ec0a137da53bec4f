package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength is the maximum allowed length for a language code
const maxLangCodeLength = 35 // RFC 5646 recommends 35 characters max

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
	DefaultLang    string
	Strict         bool
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.CookieName = name
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.QueryParamName = name
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) == 0 {
			return
		}
		c.SupportedLangs = langs
	}
}

// WithFallbackLanguage sets the language returned when the Accept-Language
// header has no supported entry.
func WithFallbackLanguage(lang string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if lang == "" {
			return
		}
		c.DefaultLang = lang
	}
}

// WithStrictMatching disables sub-tag truncation for Accept-Language entries.
func WithStrictMatching(strict bool) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.Strict = strict
	}
}

// DefaultLangExtractor creates a language extractor that checks multiple sources in priority order:
// 1. Query parameter (default name: "lang")
// 2. Cookie (default name: "lang")
// 3. Accept-Language header
//
// Query and cookie values are explicit choices and must name a supported language
// exactly (case-insensitive). The Accept-Language header goes through Negotiate
// with the configured strictness and falls back to the default language.
//
// Without supported languages, query and cookie values are only checked for a
// well-formed tag and the header yields its first highest-quality entry.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		DefaultLang:    DefaultLanguage,
	}

	for _, opt := range opts {
		opt(config)
	}

	// Build the negotiator once; it is immutable and shared across requests
	negotiator := NewNegotiator(config.SupportedLangs, config.DefaultLang, config.Strict)
	validate := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if len(config.SupportedLangs) == 0 {
			if _, ok := parseSubtags(lang); ok {
				return strings.ToLower(lang)
			}
			return ""
		}
		tag, _ := negotiator.Supports(lang)
		return tag
	}

	return func(r *http.Request) string {
		// 1. Check query parameter
		if config.QueryParamName != "" {
			if lang := validate(r.URL.Query().Get(config.QueryParamName)); lang != "" {
				return lang
			}
		}

		// 2. Check cookie
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := validate(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		// 3. Check Accept-Language header
		acceptLang := r.Header.Get("Accept-Language")
		if len(config.SupportedLangs) > 0 {
			return negotiator.Negotiate(acceptLang)
		}
		return preferredTag(acceptLang, config.DefaultLang)
	}
}

// preferredTag returns the first entry with the highest quality, or fallback.
func preferredTag(header, fallback string) string {
	best, bestQ := fallback, 0.0
	for _, pref := range ParsePreferences(header) {
		if pref.Quality > bestQ {
			best, bestQ = pref.Tag(), pref.Quality
		}
	}
	return best
}
