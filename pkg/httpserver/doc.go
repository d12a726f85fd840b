// Package httpserver wraps net/http with graceful shutdown.
//
// Run blocks serving the given handler until the context is canceled, an
// interrupt signal arrives, or the listener fails; in the first two cases it
// drains in-flight requests within the configured shutdown timeout before
// returning.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// NewFromConfig builds a server from an env-tagged Config for use with the
// config package.
package httpserver
