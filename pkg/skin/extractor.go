package skin

import "net/http"

// Extractor picks the skin of a request.
type Extractor func(r *http.Request) Skin

type extractorConfig struct {
	queryParam string
	cookieName string
}

// ExtractorOption configures the extractor.
type ExtractorOption func(*extractorConfig)

// WithQueryParamName sets the query parameter holding the skin name.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// WithCookieName sets the cookie holding the remembered skin.
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// Extractor returns an extractor checking the query parameter (default "skin"),
// then the cookie (default "skin"), then falling back to the default skin.
// Unknown names are ignored.
func (r *Registry) Extractor(opts ...ExtractorOption) Extractor {
	cfg := &extractorConfig{queryParam: "skin", cookieName: "skin"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(req *http.Request) Skin {
		if s, ok := r.Lookup(req.URL.Query().Get(cfg.queryParam)); ok {
			return s
		}
		if c, err := req.Cookie(cfg.cookieName); err == nil {
			if s, ok := r.Lookup(c.Value); ok {
				return s
			}
		}
		return r.def
	}
}
