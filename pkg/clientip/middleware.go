package clientip

import "net/http"

// Middleware stores the client IP in the request context, trusting the given headers.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), GetIP(r, trusted...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
