package content

import (
	"context"
	"errors"
	"fmt"
)

// Page is a resolved content page.
type Page struct {
	Lang string
	// Key is the requested page key, HomeKey when none was requested.
	Key string
	// File is the name the body was read from, relative to the source root.
	File string
	Body []byte
	// Found is false when the error page was served instead of the requested one.
	Found bool
}

// Resolver picks the content file for a language and page key.
type Resolver struct {
	source Source
	table  Table
}

// NewResolver creates a resolver reading files listed in table from source.
// A nil table uses DefaultTable.
func NewResolver(source Source, table Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	return &Resolver{source: source, table: table}
}

// Resolve returns the page for key in lang.
//
// An empty key is the home page. A key missing from the table, or listed with
// a file the source does not have, resolves to the language's error page with
// Found set to false. Source failures other than ErrNotFound are returned as is,
// as is ErrNotFound when the error page itself is missing.
func (r *Resolver) Resolve(ctx context.Context, lang, key string) (Page, error) {
	if key == "" {
		key = HomeKey
	}

	if file, ok := r.table.File(key); ok {
		name := filePath(lang, file)
		body, err := r.source.Open(ctx, name)
		switch {
		case err == nil:
			return Page{Lang: lang, Key: key, File: name, Body: body, Found: true}, nil
		case !errors.Is(err, ErrNotFound):
			return Page{}, fmt.Errorf("resolve page %q: %w", key, err)
		}
	}

	name := filePath(lang, ErrorKey+".html")
	body, err := r.source.Open(ctx, name)
	if err != nil {
		return Page{}, fmt.Errorf("resolve error page for %q: %w", key, err)
	}
	return Page{Lang: lang, Key: key, File: name, Body: body, Found: false}, nil
}
