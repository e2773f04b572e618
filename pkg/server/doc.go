// Package server provides the HTTP server that exposes a configurator over a
// small read-only API.
//
// # Architecture
//
// The server is stateless apart from its readiness flag and wraps every API
// route in the same middleware chain:
//
//   - promhttp instrumentation labeled by route pattern (multiconf_http_*)
//   - Request ID propagation (X-Request-Id)
//   - API version negotiation via the Accept header
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Access log
//
// System endpoints (/health, /ready, /metrics) bypass the chain. /ready also
// runs the check set with WithReadinessCheck, so an instance whose backing
// configuration stops loading drops out of rotation.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("multiconf"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/configuration": h.HandleConfiguration,
//	    }),
//	    server.WithReadinessCheck(h.CheckLoadable),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment.
//
// # Errors
//
// Handlers report failures with WriteErrorFromErr, which maps the
// pkg/errors code of a StructuredError onto an HTTP status:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "key service.port not found",
//	  "requestId": "4d7a...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
package server
