// Package cookie writes and reads the plain cookies that remember visitor
// preferences, such as the chosen language or skin.
//
// A Manager holds the attributes shared by every cookie it writes. Defaults
// are Path "/", a max age of one year, HttpOnly and SameSite=Lax. Options
// passed to Set override them for a single cookie.
//
//	cookies := cookie.NewFromConfig(cfg)
//	if err := cookies.Set(w, "lang", "de"); err != nil {
//		// value can not be sent in a cookie
//	}
//
//	lang, err := cookies.Get(r, "lang")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no preference yet
//	}
//
// Values are not signed. Never store anything in these cookies that a
// visitor must not be able to change.
package cookie
