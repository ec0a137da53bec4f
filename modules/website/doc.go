// Package website serves the tel project website.
//
// Every page is requested from "/" with the page key in the "to" query
// parameter. Without a key the home page is served; unknown keys and pages
// missing in the chosen language get the language's error page with status
// 404.
//
// The language comes from the "lang" query parameter, then the "lang" cookie,
// then the Accept-Language header negotiated against the configured
// languages. The skin comes from the "skin" query parameter, then the "skin"
// cookie, then the configured default. Valid query values are remembered in
// their cookies.
//
// The router also serves the stylesheets under /static/ and the health
// endpoints /healthz and /readyz, the latter checking the content source.
package website
