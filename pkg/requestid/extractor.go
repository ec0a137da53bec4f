package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/telsite/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor adding the request ID to every record.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
