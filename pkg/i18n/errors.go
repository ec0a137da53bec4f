package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// Language configuration
	ErrNoLanguages                 = errors.New("no supported languages configured")
	ErrInvalidLanguage             = errors.New("invalid language tag")
	ErrDefaultLanguageNotSupported = errors.New("default language is not in the supported set")

	// Translator
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Filesystem operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrLoadingFileCancelled         = errors.New("loading translation file cancelled")
	ErrFailedToReadFile             = errors.New("failed to read translation file")
	ErrFailedToParseFile            = errors.New("failed to parse translation file")
	ErrNoTranslationFiles           = errors.New("no valid translation files found")
)
