package website

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/telsite/handler"
	"github.com/dmitrymomot/telsite/pkg/content"
	"github.com/dmitrymomot/telsite/pkg/i18n"
	"github.com/dmitrymomot/telsite/pkg/skin"
)

// navKeys are the pages linked from the navigation, in order.
var navKeys = []string{content.HomeKey, "help", "download", "contact"}

// LayoutParams is the data of the page layout.
type LayoutParams struct {
	Lang          string
	SiteName      string
	Title         string
	Slogan        string
	Footer        string
	HomeURL       string
	LanguageLabel string
	SkinLabel     string
	Skin          skin.Skin
	Nav           []Link
	Languages     []Link
	Skins         []Link
	Body          template.HTML
}

// Link is an entry of the navigation or a switcher.
type Link struct {
	Label  string
	URL    string
	Value  string
	Active bool
}

// pageURL builds a link to the page key keeping the language and skin.
// The home page is linked without a key.
func pageURL(key, lang, skinName string) string {
	q := url.Values{}
	if key != "" && key != content.HomeKey {
		q.Set("to", key)
	}
	if lang != "" {
		q.Set("lang", lang)
	}
	if skinName != "" {
		q.Set("skin", skinName)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// layout fills the layout for a page in lang. key selects the active
// navigation entry and the title, which an empty key leaves at the site name.
func (s *Service) layout(lang string, sk skin.Skin, key string, body template.HTML) LayoutParams {
	tr := s.translator
	siteName := tr.T(lang, "site.name")

	p := LayoutParams{
		Lang:          lang,
		SiteName:      siteName,
		Title:         siteName,
		Slogan:        tr.T(lang, "site.slogan"),
		Footer:        tr.T(lang, "site.footer"),
		HomeURL:       pageURL(content.HomeKey, lang, sk.Name),
		LanguageLabel: tr.T(lang, "language.label"),
		SkinLabel:     tr.T(lang, "skin.label"),
		Skin:          sk,
		Body:          body,
	}
	if key != "" {
		p.Title = siteName + " - " + tr.T(lang, "nav."+key)
	}

	for _, k := range navKeys {
		p.Nav = append(p.Nav, Link{
			Label:  tr.T(lang, "nav."+k),
			URL:    pageURL(k, lang, sk.Name),
			Value:  k,
			Active: k == key,
		})
	}
	switchKey := key
	if switchKey == content.ErrorKey {
		switchKey = ""
	}
	for _, l := range s.cfg.Languages {
		p.Languages = append(p.Languages, Link{
			Label:  tr.T(l, "language.name"),
			URL:    pageURL(switchKey, l, sk.Name),
			Value:  l,
			Active: strings.EqualFold(l, lang),
		})
	}
	for _, other := range s.skins.All() {
		p.Skins = append(p.Skins, Link{
			Label:  other.Title,
			URL:    pageURL(switchKey, lang, other.Name),
			Value:  other.Name,
			Active: other.Name == sk.Name,
		})
	}
	return p
}

// pageView renders a content page inside the layout.
func (s *Service) pageView(lang string, sk skin.Skin, page content.Page) templ.Component {
	key := page.Key
	if !page.Found {
		key = content.ErrorKey
	}
	// Content files are trusted HTML fragments
	return templ.FromGoHTML(layoutTemplate, s.layout(lang, sk, key, template.HTML(page.Body)))
}

// errorView renders the translated message of an error inside the layout.
// Language and skin are taken from the request context at render time.
func (s *Service) errorView(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.GetLocale(ctx)
		tr := s.translator

		key, heading := "", tr.T(lang, "errors.title")
		if p.StatusCode == http.StatusNotFound {
			key, heading = content.ErrorKey, tr.T(lang, "nav.error")
		}

		var body strings.Builder
		body.WriteString("<h1>")
		body.WriteString(template.HTMLEscapeString(heading))
		body.WriteString("</h1>\n<p>")
		body.WriteString(template.HTMLEscapeString(tr.T(lang, "errors."+p.Key)))
		body.WriteString("</p>\n")
		if p.RequestID != "" {
			body.WriteString(`<p class="request-id">`)
			body.WriteString(template.HTMLEscapeString(tr.T(lang, "errors.request_id", "id", p.RequestID)))
			body.WriteString("</p>\n")
		}

		params := s.layout(lang, skin.FromContext(ctx), key, template.HTML(body.String()))
		return templ.FromGoHTML(layoutTemplate, params).Render(ctx, w)
	})
}
