// Package logger builds the *slog.Logger used across the site.
//
// New returns a logger configured by Option functions: output format (text
// or JSON), minimum level, static attributes and ContextExtractor callbacks.
// The handler is wrapped by LogHandlerDecorator, which runs the extractors on
// every record so values stored in the context, such as the request ID, are
// logged without passing them around.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "telsite"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// WithEnvironment picks debug level text output in development and info level
// JSON in staging and production.
//
// Attribute helpers in attr.go keep key names consistent:
//
//	log.InfoContext(ctx, "page served",
//		logger.Page("help"),
//		logger.Language("de"),
//		logger.Skin("modern"),
//		logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
