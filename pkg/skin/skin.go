package skin

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNoSkins        = errors.New("skin: no skins registered")
	ErrDuplicateSkin  = errors.New("skin: duplicate skin name")
	ErrInvalidSkin    = errors.New("skin: invalid skin")
	ErrUnknownDefault = errors.New("skin: default skin is not registered")
)

// Skin is a named look of the site.
type Skin struct {
	Name       string // lower-case identifier used in URLs and cookies
	Title      string // label shown in the skin switcher
	Stylesheet string // path of the stylesheet, e.g. "/static/classic.css"
}

// Classic and Modern are the skins bundled with the site.
var (
	Classic = Skin{Name: "classic", Title: "Classic", Stylesheet: "/static/classic.css"}
	Modern  = Skin{Name: "modern", Title: "Modern", Stylesheet: "/static/modern.css"}
)

// Registry is an immutable set of skins with a default.
// It is safe for concurrent use.
type Registry struct {
	skins []Skin
	def   Skin
}

// NewRegistry creates a registry of skins. Names are matched case-insensitively
// and must be unique. defaultName must name one of the skins.
func NewRegistry(defaultName string, skins ...Skin) (*Registry, error) {
	if len(skins) == 0 {
		return nil, ErrNoSkins
	}

	r := &Registry{skins: make([]Skin, 0, len(skins))}
	for _, s := range skins {
		s.Name = strings.ToLower(strings.TrimSpace(s.Name))
		if s.Name == "" || s.Stylesheet == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidSkin, s)
		}
		if _, ok := r.Lookup(s.Name); ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSkin, s.Name)
		}
		if s.Title == "" {
			s.Title = s.Name
		}
		r.skins = append(r.skins, s)
	}

	def, ok := r.Lookup(defaultName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultName)
	}
	r.def = def
	return r, nil
}

// Lookup returns the skin registered under name, ignoring case.
func (r *Registry) Lookup(name string) (Skin, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Skin{}, false
	}
	i := slices.IndexFunc(r.skins, func(s Skin) bool { return s.Name == name })
	if i < 0 {
		return Skin{}, false
	}
	return r.skins[i], true
}

// Default returns the default skin.
func (r *Registry) Default() Skin {
	return r.def
}

// All returns the skins in registration order.
func (r *Registry) All() []Skin {
	return slices.Clone(r.skins)
}
