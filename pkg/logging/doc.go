// Package logging provides structured logging utilities for multiconf components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every component logs the same way. It supports environment-based log
// level configuration, module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("multiconf", "v1.0.0", os.Getenv(logging.EnvLogLevel))
//	    slog.Info("configurator built", "type", configurator.TypeYAML)
//	}
//
// Routing net/http's internal errors through slog:
//
//	srv := &http.Server{ErrorLog: logging.NewLogLogger(slog.LevelWarn, false)}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug multiconf show
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "configurator built",
//	    "module": "multiconf",
//	    "version": "v1.0.0",
//	    "type": "dls_multiconf_lib.dls_multiconf_configurators.yaml"
//	}
package logging
