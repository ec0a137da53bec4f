package content

import "errors"

var (
	// ErrNotFound is returned when a source has no file with the requested name.
	ErrNotFound = errors.New("content not found")

	// ErrInvalidPath is returned for names that escape the content root.
	ErrInvalidPath = errors.New("invalid content path")

	// ErrTooLarge is returned for files above the size limit of a source.
	ErrTooLarge = errors.New("content file too large")

	// ErrUnknownSource is returned by NewSource for an unsupported CONTENT_SOURCE.
	ErrUnknownSource = errors.New("unknown content source")
)
