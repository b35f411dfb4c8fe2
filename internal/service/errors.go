package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by NewAppInfoService when neither
	// the configuration nor the build metadata carry a version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAlreadyPatched is returned by ConfigResolver.Patch on every call
	// after the first one.
	ErrAlreadyPatched = errors.New("page configuration is already patched")

	// ErrNoTraceAdapter is returned by ConfigResolver.Patch when the resolver
	// was built without a diagnostic client.
	ErrNoTraceAdapter = errors.New("no trace adapter configured")
)
