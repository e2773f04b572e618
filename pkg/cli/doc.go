// Package cli implements the multiconf command-line interface.
//
// # Overview
//
// The multiconf CLI builds the default configurator from the configuration
// file named by ECHOLOCATOR_CONFIGFILE (or --config) and prints what it
// resolves. It is intended for operators checking that a deployment's
// configuration file loads and expands the way they expect.
//
// # Commands
//
// show - Print the resolved configuration:
//
//	multiconf show [--output FILE] [--format yaml|json|table]
//
// get - Print one value by dotted key path:
//
//	multiconf get service.hosts[0]
//
// types - List the configurator types that can be built:
//
//	multiconf types --format json
//
// serve - Expose the configuration over HTTP (see pkg/api):
//
//	multiconf serve --port 8080
//
// # Global Flags
//
//	--config, -c   Configuration file (overrides ECHOLOCATOR_CONFIGFILE)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//
// # Exit Codes
//
// The CLI exits 1 on any error, printing the structured error, for example:
//
//	[ENVIRONMENT_MISCONFIGURATION] environment variable ECHOLOCATOR_CONFIGFILE is not set
package cli
