package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := handler.Templ(text("<p>hello</p>")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hello</p>", rec.Body.String())
}

func TestTemplWithStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.TemplWithStatus(text("missing"), http.StatusNotFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "missing", rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, handler.TemplWithStatus(text("ok"), 0).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTempl_RenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("template failed")
	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<html>partial")
		return boom
	})

	rec := httptest.NewRecorder()
	err := handler.Templ(failing).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.Body.String(), "nothing is written on failure")
	assert.Empty(t, rec.Header().Get("Content-Type"))
}
