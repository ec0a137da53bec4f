package skin

import (
	"context"
	"net/http"
)

type skinContextKey struct{}

// WithContext stores the skin in the context.
func WithContext(ctx context.Context, s Skin) context.Context {
	return context.WithValue(ctx, skinContextKey{}, s)
}

// FromContext returns the skin stored in the context, or Classic.
func FromContext(ctx context.Context) Skin {
	if s, ok := ctx.Value(skinContextKey{}).(Skin); ok {
		return s
	}
	return Classic
}

// Middleware stores the skin chosen by extract in the request context.
func Middleware(extract Extractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), extract(r))))
		})
	}
}
