// Package binder binds HTTP request data to Go structs for the typed
// handlers of package handler.
//
// Query binds URL query parameters using `query` struct tags:
//
//	type PageRequest struct {
//		To   string `query:"to"`
//		Lang string `query:"lang"`
//	}
//
// Requests without a query string yield ErrBinderNotApplicable, which the
// handler wrapper skips so the zero value reaches the handler. Values that
// can not be converted to the field type are reported wrapped in
// ErrFailedToParseQuery.
package binder
