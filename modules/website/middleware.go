package website

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/telsite/pkg/clientip"
	"github.com/dmitrymomot/telsite/pkg/logger"
)

// requestLogger logs every request with its status, language and duration.
// Server errors are logged at error level, client errors at warn.
func (s *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			logger.HTTPRequest(r.Method, r.URL.Path, status),
			logger.Duration(time.Since(start)),
			logger.ClientIP(clientip.GetIPFromContext(r.Context())),
		}
		if lang := ww.Header().Get("Content-Language"); lang != "" {
			attrs = append(attrs, logger.Language(lang))
		}
		s.log.LogAttrs(r.Context(), level, "http request", attrs...)
	})
}
