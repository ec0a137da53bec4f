package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/telsite/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = i18n.GetLocale(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("stores extracted language", func(t *testing.T) {
		mw := i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "de")))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-CH;q=0.9, en;q=0.4")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, "de", seen)
		assert.Equal(t, "de", rec.Header().Get("Content-Language"))
		assert.Contains(t, rec.Header().Values("Vary"), "Accept-Language")
	})

	t.Run("empty extraction falls back to english", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "" })
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, i18n.DefaultLanguage, seen)
		assert.Equal(t, i18n.DefaultLanguage, rec.Header().Get("Content-Language"))
	})

	t.Run("nil extractor uses default", func(t *testing.T) {
		mw := i18n.Middleware(nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "nl")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, "nl", seen)
	})
}
