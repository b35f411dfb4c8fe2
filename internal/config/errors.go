package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPageConfigs indicates invalid page settings
	// (for example, an unknown preset).
	ErrInvalidPageConfigs = errors.New("invalid page configuration")
	// ErrInvalidAdapterConfigs indicates invalid diagnostic client settings
	// (for example, a trace origin without scheme or host).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
