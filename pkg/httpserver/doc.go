// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address, serves until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then drains in-flight requests within the
// shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Health returns a JSON readiness handler built from named checks.
package httpserver
