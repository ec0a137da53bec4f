package i18n

import (
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

const (
	maxSubtags       = 8
	maxSubtagLength  = 8
	maxQualityDigits = 3
)

// Preference is a single validated entry of an Accept-Language header.
type Preference struct {
	Subtags []string
	Quality float64
}

// Tag returns the sub-tags joined by hyphens, in lower case.
func (p Preference) Tag() string {
	return strings.ToLower(strings.Join(p.Subtags, "-"))
}

// Selection is the outcome of a negotiation.
// Matched is false when the default language was returned.
type Selection struct {
	Tag     string
	Quality float64
	Matched bool
}

// Negotiator matches Accept-Language headers against a fixed set of supported languages.
// It holds no mutable state and is safe for concurrent use.
type Negotiator struct {
	allowed     map[string]string // lower-case tag -> tag as configured
	defaultLang string
	strict      bool
}

// NewNegotiator creates a negotiator for the given supported languages.
// Languages are compared case-insensitively; a selected language is returned
// spelled as it appears in allowed. defaultLang is returned verbatim when
// nothing matches and does not have to be part of allowed.
//
// In strict mode a header entry only matches at its full specificity. Otherwise
// sub-tags are dropped from the right until a supported language is found
// ("de-DE-1996" -> "de-DE" -> "de").
func NewNegotiator(allowed []string, defaultLang string, strict bool) *Negotiator {
	set := make(map[string]string, len(allowed))
	for _, lang := range allowed {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		key := strings.ToLower(lang)
		if _, ok := set[key]; !ok {
			set[key] = lang
		}
	}
	return &Negotiator{allowed: set, defaultLang: defaultLang, strict: strict}
}

// DefaultLanguage returns the language used when nothing matches.
func (n *Negotiator) DefaultLanguage() string {
	return n.defaultLang
}

// Strict reports whether sub-tag truncation is disabled.
func (n *Negotiator) Strict() bool {
	return n.strict
}

// Supports reports whether lang is one of the supported languages and returns
// its configured spelling. Only the exact tag is checked.
func (n *Negotiator) Supports(lang string) (string, bool) {
	tag, ok := n.allowed[strings.ToLower(strings.TrimSpace(lang))]
	return tag, ok
}

// Negotiate returns the best supported language for the header, or the default.
func (n *Negotiator) Negotiate(header string) string {
	return n.Select(header).Tag
}

// Select negotiates the header and reports the winning quality along with the tag.
//
// Entries are processed in header order and the running best is only replaced by
// an entry with a strictly higher quality, so the first entry reaching the highest
// quality wins. The running best starts at the default language with quality 0,
// which means an entry with q=0 never displaces the default.
func (n *Negotiator) Select(header string) Selection {
	best := Selection{Tag: n.defaultLang}

	for _, pref := range ParsePreferences(header) {
		for size := len(pref.Subtags); size > 0; size-- {
			candidate := strings.ToLower(strings.Join(pref.Subtags[:size], "-"))
			if tag, ok := n.allowed[candidate]; ok && pref.Quality > best.Quality {
				best = Selection{Tag: tag, Quality: pref.Quality, Matched: true}
				break
			}
			if n.strict {
				break
			}
		}
	}

	return best
}

// Negotiate picks the best language from allowed for the given Accept-Language
// header value. It never fails: empty or malformed input yields defaultLang.
//
// Example:
//
//	i18n.Negotiate("de-DE,en;q=0.8", []string{"en", "de"}, "en", false) // "de"
//	i18n.Negotiate("de-DE,en;q=0.8", []string{"en", "de"}, "en", true)  // "en"
func Negotiate(header string, allowed []string, defaultLang string, strict bool) string {
	return NewNegotiator(allowed, defaultLang, strict).Negotiate(header)
}

// ParsePreferences splits an Accept-Language header into its valid entries,
// preserving header order. Entries that do not follow the grammar are dropped.
func ParsePreferences(header string) []Preference {
	candidates := splitCandidates(header)
	if len(candidates) == 0 {
		return nil
	}

	prefs := make([]Preference, 0, len(candidates))
	for _, candidate := range candidates {
		if pref, ok := parsePreference(candidate); ok {
			prefs = append(prefs, pref)
		}
	}
	return prefs
}

// splitCandidates tokenizes the header on commas followed by optional whitespace.
// Whitespace before a comma is kept and makes that entry invalid.
func splitCandidates(header string) []string {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		// Drop the entry cut in half by the limit.
		if idx := strings.LastIndexByte(header, ','); idx >= 0 {
			header = header[:idx]
		} else {
			return nil
		}
	}

	parts := strings.Split(header, ",")
	for i, part := range parts {
		parts[i] = strings.TrimLeft(part, " \t\r\n\f\v")
	}
	return parts
}

// parsePreference validates a single candidate of the form "tag[;q=value]".
// Optional whitespace is allowed between ";" and "q=".
func parsePreference(candidate string) (Preference, bool) {
	tag, params, hasParams := strings.Cut(candidate, ";")

	subtags, ok := parseSubtags(tag)
	if !ok {
		return Preference{}, false
	}

	quality := 1.0
	if hasParams {
		quality, ok = parseQualityParam(params)
		if !ok {
			return Preference{}, false
		}
	}

	return Preference{Subtags: subtags, Quality: quality}, true
}

// parseSubtags checks 1-8 hyphen separated groups of 1-8 ASCII letters.
func parseSubtags(tag string) ([]string, bool) {
	if tag == "" {
		return nil, false
	}

	subtags := strings.Split(tag, "-")
	if len(subtags) > maxSubtags {
		return nil, false
	}
	for _, subtag := range subtags {
		if len(subtag) == 0 || len(subtag) > maxSubtagLength || !isASCIILetters(subtag) {
			return nil, false
		}
	}
	return subtags, true
}

// parseQualityParam parses the part after ";" which must be "q=<qvalue>".
func parseQualityParam(params string) (float64, bool) {
	params = strings.TrimLeft(params, " \t")
	if len(params) < 2 || (params[0] != 'q' && params[0] != 'Q') || params[1] != '=' {
		return 0, false
	}

	value := params[2:]
	if !isQValue(value) {
		return 0, false
	}

	q, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return q, true
}

// isQValue accepts "0", "0.d{1,3}", "1" and "1.0{1,3}".
func isQValue(value string) bool {
	if value == "" {
		return false
	}

	whole, fraction, hasFraction := strings.Cut(value, ".")
	if whole != "0" && whole != "1" {
		return false
	}
	if !hasFraction {
		return true
	}
	if len(fraction) == 0 || len(fraction) > maxQualityDigits {
		return false
	}

	for i := 0; i < len(fraction); i++ {
		c := fraction[i]
		if whole == "1" && c != '0' {
			return false
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
