package service

import (
	"context"

	"github.com/MKhiriev/cf-error-page/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ParamsListener is called with the current page configuration and resolver
// state on every state transition.
type ParamsListener func(params models.Params, state models.ResolverState)

// ConfigResolver owns the displayed page configuration.
//
// The configuration is computed once when the resolver is built and replaced
// at most once more, by [ConfigResolver.Patch]. Readers always get a
// snapshot by value.
type ConfigResolver interface {
	// Snapshot returns the current page configuration.
	Snapshot() models.Params

	// State returns the current lifecycle stage.
	State() models.ResolverState

	// Current returns the configuration and lifecycle stage as one
	// consistent pair.
	Current() (models.Params, models.ResolverState)

	// Patch performs the one-shot diagnostic lookup and replaces the held
	// configuration with the patched one. On failure the configuration is
	// left untouched and the error is returned after being logged. Calls after
	// the first return [ErrAlreadyPatched] without doing anything.
	Patch(ctx context.Context) error

	// OnUpdate registers listener. It is called immediately with the current
	// snapshot and then on every later transition.
	OnUpdate(listener ParamsListener)
}

// AppInfoService exposes static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
