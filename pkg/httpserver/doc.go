// Package httpserver runs an http.Server bound to a context: Run returns once
// the context is cancelled and the server has shut down gracefully.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":9090"),
//		httpserver.WithLogger(log),
//	)
//	err := srv.Run(ctx, router)
//
// Signal handling is left to the caller (signal.NotifyContext).
// HealthCheckHandler provides liveness/readiness endpoints.
package httpserver
