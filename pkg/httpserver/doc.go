// Package httpserver runs an http.Handler with timeouts, a request body limit
// and graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then shuts the server down within the configured deadline.
// Construction goes through New or NewFromConfig with functional options:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("http server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes. Listen errors are
// wrapped with ErrStart and shutdown errors with ErrShutdown.
package httpserver
