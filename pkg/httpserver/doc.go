// Package httpserver is a thin wrapper around net/http that adds graceful
// shutdown, configurable timeouts, and structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then drains in-flight requests within the shutdown timeout.
// Construction goes through New with Option helpers, or through NewFromConfig
// when settings come from the environment.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//	)
//
//	if err := srv.Run(context.Background(), router); err != nil {
//		slog.Error("server stopped", "err", err)
//	}
//
// Startup failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; use errors.Is to distinguish them.
package httpserver
