// Package requestid tags every request with an identifier that shows up in
// the response, in the logs and on the error page, so a visitor reporting a
// broken page can be matched to its log records.
//
// Middleware reuses a valid X-Request-ID header sent by a proxy in front of
// the site and generates a UUID otherwise. The ID is stored in the request
// context (FromContext) and echoed in the response Header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// LoggerExtractor adds the ID to every record logged with the request context.
package requestid
