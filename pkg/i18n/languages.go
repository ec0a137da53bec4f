package i18n

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ValidateLanguages checks that every configured language is a well-formed
// BCP 47 tag the negotiator can match, and that defaultLang is one of them.
// It returns the languages trimmed, with duplicates (case-insensitive) removed.
func ValidateLanguages(langs []string, defaultLang string) ([]string, error) {
	if len(langs) == 0 {
		return nil, ErrNoLanguages
	}

	result := make([]string, 0, len(langs))
	seen := make(map[string]struct{}, len(langs))
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if _, err := language.Parse(lang); err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		// The header grammar only knows letter sub-tags, anything else could never match.
		if _, ok := parseSubtags(lang); !ok {
			return nil, fmt.Errorf("%w: %q has sub-tags that can not be negotiated", ErrInvalidLanguage, lang)
		}

		key := strings.ToLower(lang)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, lang)
	}

	if !slices.ContainsFunc(result, func(l string) bool { return strings.EqualFold(l, defaultLang) }) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLanguageNotSupported, defaultLang)
	}

	return result, nil
}
