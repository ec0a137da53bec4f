package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

// templResponse wraps a templ component to implement Response
type templResponse struct {
	component templ.Component
	status    int
}

// Render writes the component as an HTML page. Nothing is written when the
// component fails to render.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ creates a 200 OK response from a templ component.
//
//	return handler.Templ(views.Page(page))
func Templ(component templ.Component) Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates a response from a templ component with the given status code.
//
//	return handler.TemplWithStatus(views.Page(page), http.StatusNotFound)
func TemplWithStatus(component templ.Component, status int) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return templResponse{component: component, status: status}
}
