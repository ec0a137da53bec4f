package binder

import "errors"

// Common binding errors
var (
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrBinderNotApplicable is returned by binders that have nothing to bind
	// for the request. Callers chaining binders skip it.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")
)
