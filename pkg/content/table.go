package content

import (
	"path"
	"strings"
)

// Page keys with a fixed meaning.
const (
	HomeKey  = "home"
	ErrorKey = "error"
)

// Table maps page keys, as used in the "to" query parameter, to file names
// inside a language directory.
type Table map[string]string

// DefaultTable returns the pages of the site.
func DefaultTable() Table {
	return Table{
		HomeKey:    "home.html",
		"help":     "help.html",
		"download": "download.html",
		"contact":  "contact.html",
	}
}

// File returns the file of key. Keys are matched exactly.
func (t Table) File(key string) (string, bool) {
	file, ok := t[key]
	return file, ok && file != ""
}

// filePath joins a language directory and a file name.
func filePath(lang, file string) string {
	return path.Join(strings.ToLower(lang), file)
}
