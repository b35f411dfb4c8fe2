// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/merge"
	"github.com/MKhiriev/cf-error-page/models"
)

type configResolver struct {
	trace adapter.TraceAdapter

	mu        sync.RWMutex
	params    models.Params
	state     models.ResolverState
	listeners []ParamsListener

	patchStarted atomic.Bool

	logger *logger.Logger
}

// NewConfigResolver builds the initial page configuration from cfg and
// returns a resolver in [models.StateResolved]. trace may be nil, in which
// case Patch fails with [ErrNoTraceAdapter] and the defaults stay in place.
func NewConfigResolver(cfg config.Page, trace adapter.TraceAdapter, logger *logger.Logger) ConfigResolver {
	r := &configResolver{
		trace:  trace,
		state:  models.StateUnresolved,
		logger: logger,
	}

	r.params = ResolveInitialParams(cfg, logger)
	r.state = models.StateResolved

	logger.Info().
		Str("preset", string(cfg.Preset)).
		Int("error_code", r.params.ErrorCode).
		Str("state", r.state.String()).
		Msg("page configuration resolved")

	return r
}

// ResolveInitialParams merges the override fragment of cfg onto the preset
// defaults. It never fails: an unparsable or ill-typed override is logged and
// the preset defaults are returned unchanged.
func ResolveInitialParams(cfg config.Page, logger *logger.Logger) models.Params {
	base := models.ParamsFor(cfg.Preset)

	if strings.TrimSpace(cfg.Override) == "" {
		return base
	}

	fragment, err := merge.Parse(cfg.Override)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse page config override, using defaults")
		return base
	}

	logger.Info().Interface("override", fragment).Msg("loaded page config override")

	merged, err := mergeParams(base, fragment)
	if err != nil {
		logger.Error().Err(err).Msg("failed to apply page config override, using defaults")
		return base
	}

	return merged
}

func mergeParams(base models.Params, fragment merge.Record) (models.Params, error) {
	baseRecord, err := merge.FromStruct(base)
	if err != nil {
		return base, err
	}

	var merged models.Params
	if err = merge.ToStruct(merge.DeepMerge(baseRecord, fragment), &merged); err != nil {
		return base, err
	}

	return merged, nil
}

// Snapshot implements [ConfigResolver].
func (r *configResolver) Snapshot() models.Params {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params
}

// State implements [ConfigResolver].
func (r *configResolver) State() models.ResolverState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Current implements [ConfigResolver].
func (r *configResolver) Current() (models.Params, models.ResolverState) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params, r.state
}

// OnUpdate implements [ConfigResolver].
func (r *configResolver) OnUpdate(listener ParamsListener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, listener)
	params, state := r.params, r.state
	r.mu.Unlock()

	listener(params, state)
}

// Patch implements [ConfigResolver].
func (r *configResolver) Patch(ctx context.Context) error {
	if !r.patchStarted.CompareAndSwap(false, true) {
		return ErrAlreadyPatched
	}

	if r.trace == nil {
		r.logger.Warn().Err(ErrNoTraceAdapter).Msg("diagnostic lookup skipped, keeping current page configuration")
		r.publish(nil)
		return ErrNoTraceAdapter
	}

	info, err := r.trace.Trace(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("diagnostic lookup failed, keeping current page configuration")
		r.publish(nil)
		return fmt.Errorf("diagnostic lookup: %w", err)
	}

	r.publish(func(prev models.Params) models.Params {
		update := BuildUpdate(prev, info)
		if update.IsEmpty() {
			r.logger.Info().Msg("diagnostic lookup returned nothing to patch, keeping current page configuration")
			return prev
		}
		r.logger.Info().
			Bool("client_ip", update.ClientIP != nil).
			Bool("ray_id", update.RayID != nil).
			Bool("location", update.CloudflareStatus != nil).
			Msg("page configuration patched from diagnostic lookup")
		return ApplyUpdate(prev, update)
	})

	return nil
}

// publish moves the resolver to StatePatched, replacing the held params with
// patch(previous) when patch is not nil, and notifies listeners.
func (r *configResolver) publish(patch func(models.Params) models.Params) {
	r.mu.Lock()
	if patch != nil {
		r.params = patch(r.params)
	}
	r.state = models.StatePatched
	params, state := r.params, r.state
	listeners := append([]ParamsListener(nil), r.listeners...)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(params, state)
	}
}
