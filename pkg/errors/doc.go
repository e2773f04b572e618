// Package errors provides structured error types for better observability
// and programmatic error handling across the configurator packages.
//
// Every failure raised while building or reading a configurator carries an
// ErrorCode, so callers can branch on the kind of failure without parsing
// messages:
//
//	cfg, err := configurators.BuildObjectFromEnvironment(nil)
//	if errors.IsCode(err, errors.ErrCodeEnvironmentMisconfiguration) {
//	    // the config file variable is unset or names a missing file
//	}
//
// Wrapped causes stay reachable through errors.Is and errors.As:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInstantiationFailure,
//	    "unable to instantiate configurator object from type yaml",
//	    cause,
//	    map[string]any{"type": "yaml"},
//	)
package errors
