package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/telsite/pkg/logger"
	"github.com/dmitrymomot/telsite/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Key        string // translation key of the message
	StatusCode int
	RequestID  string
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Key        string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Key:        ErrInternalServerError.Key,
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the error handler used by every page of the site.
// Errors are logged with the request ID and answered with the page rendered
// by errorPage, or a plain text response when errorPage is nil.
func NewErrorHandler(log *slog.Logger, errorPage func(ErrorPageParams) templ.Component) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.HTTPRequest(r.Method, r.URL.Path, info.StatusCode),
			logger.Component("error_handler"),
		)

		if errorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Key, info.StatusCode)
			return
		}

		response := TemplWithStatus(errorPage(ErrorPageParams{
			Key:        info.Key,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
		}), info.StatusCode)

		if renderErr := response.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error page",
				logger.RequestID(requestID),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
