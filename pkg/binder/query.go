package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Fields without a tag bind to the lower-cased field name.
// Parameters present with an empty value leave the field untouched.
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value parameters
//   - Pointers for optional fields
//   - Types implementing encoding.TextUnmarshaler
//
// Example:
//
//	type PageRequest struct {
//		To   string `query:"to"`
//		Lang string `query:"lang"`
//		Skin string `query:"skin"`
//	}
//
//	r.Get("/", handler.Wrap(page, handler.WithBinder[handler.Context, PageRequest](binder.Query())))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.URL == nil || r.URL.RawQuery == "" {
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
