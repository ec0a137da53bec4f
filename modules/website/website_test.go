package website_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/modules/website"
	"github.com/dmitrymomot/telsite/pkg/content"
	"github.com/dmitrymomot/telsite/pkg/cookie"
)

func testConfig() website.Config {
	return website.Config{
		AppEnv:          "test",
		AppName:         "telsite",
		Languages:       []string{"en", "de"},
		DefaultLanguage: "en",
		DefaultSkin:     "classic",
		LangCookie:      "lang",
		SkinCookie:      "skin",
		Cookie:          cookie.DefaultConfig(),
	}
}

func newSite(t *testing.T, source content.Source) http.Handler {
	t.Helper()
	if source == nil {
		source = content.NewFSSource(website.Content())
	}
	svc, err := website.NewService(context.Background(), testConfig(), source, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc.Handle()
}

func get(t *testing.T, h http.Handler, target string, setup func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func acceptLanguage(v string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Accept-Language", v) }
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPages(t *testing.T) {
	t.Parallel()
	site := newSite(t, nil)

	tests := []struct {
		name     string
		target   string
		setup    func(*http.Request)
		wantCode int
		wantLang string
		contains string
	}{
		{name: "home by default", target: "/", wantCode: http.StatusOK, wantLang: "en", contains: "What is tel?"},
		{name: "negotiated german", target: "/", setup: acceptLanguage("de-DE,de;q=0.9,en;q=0.5"), wantCode: http.StatusOK, wantLang: "de", contains: "Was ist tel?"},
		{name: "unsupported header falls back", target: "/", setup: acceptLanguage("fr-FR,fr;q=0.8"), wantCode: http.StatusOK, wantLang: "en", contains: "What is tel?"},
		{name: "help page", target: "/?to=help", wantCode: http.StatusOK, wantLang: "en", contains: "Support tel"},
		{name: "query language wins over header", target: "/?to=help&lang=de", setup: acceptLanguage("en"), wantCode: http.StatusOK, wantLang: "de", contains: "Die Unterstützung"},
		{name: "cookie language", target: "/?to=download", setup: withCookie("lang", "de"), wantCode: http.StatusOK, wantLang: "de", contains: "Aktuelle Revision"},
		{name: "unsupported query language is ignored", target: "/?lang=fr", setup: acceptLanguage("de"), wantCode: http.StatusOK, wantLang: "de", contains: "Was ist tel?"},
		{name: "unknown key", target: "/?to=nothing", wantCode: http.StatusNotFound, wantLang: "en", contains: "Page not found"},
		{name: "unknown key german", target: "/?to=nothing&lang=de", wantCode: http.StatusNotFound, wantLang: "de", contains: "Seite nicht gefunden"},
		{name: "old index.php links", target: "/index.php?to=contact", wantCode: http.StatusOK, wantLang: "en", contains: "<h1>Contact</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, site, tt.target, tt.setup)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLang, rec.Header().Get("Content-Language"))
			assert.Contains(t, rec.Header().Get("Vary"), "Accept-Language")
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.Contains(t, rec.Body.String(), `lang="`+tt.wantLang+`"`)
		})
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()
	site := newSite(t, nil)

	rec := get(t, site, "/?to=help&lang=de&skin=modern", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<title>tel - Unterstützung</title>")
	assert.Contains(t, body, "das kleine Telefonbuch für dein Terminal")
	assert.Contains(t, body, `href="/static/modern.css"`)
	// Navigation keeps language and skin
	assert.Contains(t, body, `href="/?lang=de&amp;skin=modern&amp;to=download"`)
	assert.Contains(t, body, `<li class="active"><a href="/?lang=de&amp;skin=modern&amp;to=help">Unterstützung</a></li>`)
	// Switchers keep the page
	assert.Contains(t, body, `href="/?lang=en&amp;skin=modern&amp;to=help"`)
	assert.Contains(t, body, `href="/?lang=de&amp;skin=classic&amp;to=help"`)
	assert.Contains(t, body, "English")
}

func TestPreferenceCookies(t *testing.T) {
	t.Parallel()
	site := newSite(t, nil)

	rec := get(t, site, "/?lang=DE&skin=Modern", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	lang := responseCookie(rec, "lang")
	require.NotNil(t, lang)
	assert.Equal(t, "de", lang.Value, "configured spelling is stored")
	assert.Equal(t, cookie.DefaultMaxAge, lang.MaxAge)

	sk := responseCookie(rec, "skin")
	require.NotNil(t, sk)
	assert.Equal(t, "modern", sk.Value)

	rec = get(t, site, "/?lang=fr&skin=retro", nil)
	assert.Nil(t, responseCookie(rec, "lang"))
	assert.Nil(t, responseCookie(rec, "skin"))

	// Remembered skin applies without query
	rec = get(t, site, "/", withCookie("skin", "modern"))
	assert.Contains(t, rec.Body.String(), `href="/static/modern.css"`)
}

func TestMissingPageInLanguage(t *testing.T) {
	t.Parallel()
	source := content.NewFSSource(fstest.MapFS{
		"en/home.html":  {Data: []byte("<h1>home</h1>")},
		"en/help.html":  {Data: []byte("<h1>help</h1>")},
		"en/error.html": {Data: []byte("<h1>no such page</h1>")},
		"de/home.html":  {Data: []byte("<h1>start</h1>")},
		"de/error.html": {Data: []byte("<h1>keine Seite</h1>")},
	})
	site := newSite(t, source)

	rec := get(t, site, "/?to=help&lang=de", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "keine Seite")

	rec = get(t, site, "/?to=help&lang=en", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>help</h1>")
}

type brokenSource struct{}

func (brokenSource) Open(context.Context, string) ([]byte, error) {
	return nil, errors.New("bucket unreachable")
}

func (brokenSource) Ping(context.Context) error { return errors.New("bucket unreachable") }

func TestSourceFailure(t *testing.T) {
	t.Parallel()
	site := newSite(t, brokenSource{})

	rec := get(t, site, "/?lang=de", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bei uns ist etwas schiefgelaufen")
	assert.NotContains(t, rec.Body.String(), "bucket unreachable")

	rec = get(t, site, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestRoutes(t *testing.T) {
	t.Parallel()
	site := newSite(t, nil)

	rec := get(t, site, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = get(t, site, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	rec = get(t, site, "/static/classic.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = get(t, site, "/does/not/exist", acceptLanguage("de"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Die gesuchte Seite gibt es nicht.")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	site.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewService_InvalidConfig(t *testing.T) {
	t.Parallel()
	source := content.NewFSSource(website.Content())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testConfig()
	cfg.DefaultLanguage = "fr"
	_, err := website.NewService(context.Background(), cfg, source, log)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.DefaultSkin = "retro"
	_, err = website.NewService(context.Background(), cfg, source, log)
	assert.Error(t, err)

	_, err = website.NewService(context.Background(), testConfig(), nil, log)
	assert.Error(t, err)
}
