package website

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed assets
var assets embed.FS

var layoutTemplate = template.Must(template.ParseFS(assets, "assets/templates/layout.html"))

// Content returns the bundled pages, one directory per language.
func Content() fs.FS {
	return sub("assets/content")
}

// Translations returns the bundled translation files.
func Translations() fs.FS {
	return sub("assets/translations")
}

// Static returns the bundled stylesheets.
func Static() fs.FS {
	return sub("assets/static")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return fsys
}
