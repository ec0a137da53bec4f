// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap turns them into an http.HandlerFunc:
//
//	type PageRequest struct {
//		To   string `query:"to"`
//		Lang string `query:"lang"`
//	}
//
//	func page(ctx handler.Context, req PageRequest) handler.Response {
//		return handler.Templ(views.Page(req.To))
//	}
//
//	r.Get("/", handler.Wrap(page,
//		handler.WithBinders[handler.Context, PageRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, PageRequest](errorHandler),
//	))
//
// # Responses
//
// Templ and TemplWithStatus render a templ.Component as an HTML page. The
// component is rendered completely before anything is written, so render
// errors are answered by the error handler.
//
// # Errors
//
// Binding and rendering errors are passed to the ErrorHandler. HTTPError
// carries a status code and a translation key; any other error is treated as
// 500 Internal Server Error. NewErrorHandler logs the error with the request
// ID and renders an error page component.
//
// Decorators wrap a HandlerFunc for cross-cutting concerns. The first
// decorator is the outermost.
package handler
