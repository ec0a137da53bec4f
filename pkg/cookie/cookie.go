package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultMaxAge keeps a preference for a year.
const DefaultMaxAge = 365 * 24 * 60 * 60

// Manager writes and reads plain preference cookies with shared attributes.
type Manager struct {
	defaults Attributes
}

// New returns a manager for root path, one year, HttpOnly, SameSite=Lax
// cookies unless opts say otherwise.
func New(opts ...Option) *Manager {
	defaults := Attributes{
		Path:     "/",
		MaxAge:   DefaultMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: defaults.with(opts)}
}

// Defaults returns the attributes applied to every cookie.
func (m *Manager) Defaults() Attributes {
	return m.defaults
}

// Set writes a cookie. Values net/http would refuse to send are rejected.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	cookie := m.defaults.with(opts).cookie(name, value)
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the cookie in the browser.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	cookie := m.defaults.cookie(name, "")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}
