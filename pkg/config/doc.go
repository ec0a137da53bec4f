// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Without an explicit call, Load reads `.env` from the working directory
//     if it exists.
//   - Load parses the environment into a struct using `env` field tags and
//     caches the result per type for the lifetime of the process.
//   - Structs implementing Validator are validated before being cached.
//   - MustLoad and MustLoadEnv panic on failure, for settings the process
//     can not start without.
//
// # Usage
//
//	type SiteConfig struct {
//	    Languages       []string `env:"SITE_LANGUAGES" envDefault:"en,de" envSeparator:","`
//	    DefaultLanguage string   `env:"SITE_DEFAULT_LANGUAGE" envDefault:"en"`
//	    Strict          bool     `env:"SITE_STRICT_LANGUAGE" envDefault:"false"`
//	}
//
//	var cfg SiteConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: the struct's Validate method failed.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load.
//
// Failed loads are not cached, the next call parses again.
//
// # Testing Helpers
//
// ResetCache clears every cached struct. ForceReload re-parses a single type
// after the environment changed.
package config
