// Package api provides the HTTP API for reading a configurator's document.
//
// This package is a thin layer over pkg/server: it builds the configuration
// routes and delegates the server lifecycle, middleware, health probes and
// metrics to pkg/server.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/configuration        - The loaded document with placeholders expanded
//   - GET /v1/configuration/value  - One value, selected by the key query parameter
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check; fails while the configuration cannot be loaded
//   - GET /metrics - Prometheus metrics
//
// # Example
//
//	curl "http://localhost:8080/v1/configuration/value?key=service.hosts[0]"
//
//	{
//	  "key": "service.hosts[0]",
//	  "value": "alpha"
//	}
//
// Add ?format=yaml, or send Accept: application/yaml, for YAML; text/plain
// gives the flattened table.
//
// The document is read from disk on every request; nothing is cached.
package api
