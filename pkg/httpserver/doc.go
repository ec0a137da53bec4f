// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers and slog logging.
//
// Run binds the listener synchronously, so address errors are returned
// wrapped in ErrStart before any request is served. It then blocks until the
// context is cancelled, SIGINT or SIGTERM is received or Shutdown is called,
// and shuts the server down with the configured deadline.
//
// Construction goes through New or NewFromConfig with Option helpers such as
// WithAddr, WithReadTimeout and WithLogger. WithStartHook and WithStopHook
// run callbacks around the life-cycle.
//
// LivenessHandler and ReadinessHandler serve the probes:
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log, 2*time.Second,
//		httpserver.Check{Name: "content", Fn: source.Ping},
//	))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
