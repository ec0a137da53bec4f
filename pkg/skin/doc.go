// Package skin selects the stylesheet a page is rendered with.
//
// A Registry holds the available skins and a default. The extractor checks
// the "skin" query parameter, then the "skin" cookie, and falls back to the
// default for missing or unknown names:
//
//	skins, err := skin.NewRegistry("classic", skin.Classic, skin.Modern)
//	if err != nil {
//		return err
//	}
//	r.Use(skin.Middleware(skins.Extractor()))
//
// Handlers read the result with FromContext.
package skin
