// Package i18n selects the language a page is served in and translates the
// strings shared by every page of the site.
//
// # Language negotiation
//
// Negotiate picks one language from an allowed set based on the value of an
// Accept-Language request header:
//
//	lang := i18n.Negotiate(r.Header.Get("Accept-Language"), []string{"en", "de"}, "en", false)
//
// Entries are taken in header order. The first entry with the highest quality
// whose tag (or, when strict is false, one of its shorter prefixes) is allowed
// wins. Malformed entries are skipped, wildcards are never matched, and a
// quality of 0 can never displace the default. Matching ignores case and the
// configured spelling of a language is returned.
//
// A Negotiator holds the allowed set for reuse across requests and exposes the
// winning quality through Select. It is immutable and safe for concurrent use.
//
// # HTTP integration
//
// DefaultLangExtractor combines an explicit choice (query parameter, then
// cookie) with header negotiation. Middleware stores the result in the request
// context, readable with GetLocale:
//
//	extract := i18n.DefaultLangExtractor(
//		i18n.WithSupportedLanguages("en", "de"),
//		i18n.WithFallbackLanguage("en"),
//	)
//	r.Use(i18n.Middleware(extract))
//
// # Translations
//
// Translator loads nested key/value translations through a TranslationAdapter.
// FSAdapter reads YAML or JSON files from any fs.FS, embedded or on disk:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations"))
//	if err != nil {
//		return err
//	}
//	tr.Tc(ctx, "nav.help")
//
// Placeholders in the form %{name} are replaced by pairs of arguments:
//
//	tr.T("de", "welcome", "name", "Ada")
package i18n
