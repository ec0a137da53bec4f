package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/handler"
	"github.com/dmitrymomot/telsite/pkg/requestid"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return text(fmt.Sprintf("%d %s %s", p.StatusCode, p.Key, p.RequestID))
}

func newErrorRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/?to=help", nil)
	return req.WithContext(requestid.WithContext(req.Context(), id))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantKey   string
		wantLevel string
	}{
		{name: "http error", err: handler.ErrNotFound, wantCode: http.StatusNotFound, wantKey: "not_found", wantLevel: "WARN"},
		{name: "wrapped http error", err: fmt.Errorf("page: %w", handler.ErrBadRequest), wantCode: http.StatusBadRequest, wantKey: "bad_request", wantLevel: "WARN"},
		{name: "plain error", err: errors.New("disk on fire"), wantCode: http.StatusInternalServerError, wantKey: "internal_server_error", wantLevel: "ERROR"},
		{name: "server http error", err: handler.ErrServiceUnavailable, wantCode: http.StatusServiceUnavailable, wantKey: "service_unavailable", wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))
			handle := handler.NewErrorHandler(log, errorPage)

			rec := httptest.NewRecorder()
			handle(handler.NewContext(rec, newErrorRequest("req-1")), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, fmt.Sprintf("%d %s req-1", tt.wantCode, tt.wantKey), rec.Body.String())
			assert.Contains(t, logs.String(), "level="+tt.wantLevel)
			assert.Contains(t, logs.String(), "request_id=req-1")
			assert.Contains(t, logs.String(), "component=error_handler")
		})
	}
}

func TestNewErrorHandler_WithoutPage(t *testing.T) {
	t.Parallel()

	handle := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	rec := httptest.NewRecorder()
	handle(handler.NewContext(rec, newErrorRequest("req-2")), handler.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method_not_allowed")
}

func TestNewErrorHandler_PageFails(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	broken := func(handler.ErrorPageParams) templ.Component {
		return templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("broken page") })
	}
	handle := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&logs, nil)), broken)

	rec := httptest.NewRecorder()
	handle(handler.NewContext(rec, newErrorRequest("req-3")), handler.ErrNotFound)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "failed to render error page")
}
