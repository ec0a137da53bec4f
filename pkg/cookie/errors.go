package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidValue   = errors.New("cookie.invalid_value")
)
