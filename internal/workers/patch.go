// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/service"
)

// PatchWorker performs the diagnostic lookup of the page configuration once.
type PatchWorker struct {
	resolver service.ConfigResolver
	timeout  time.Duration

	logger *logger.Logger
}

func NewPatchWorker(resolver service.ConfigResolver, cfg config.Workers, logger *logger.Logger) *PatchWorker {
	return &PatchWorker{
		resolver: resolver,
		timeout:  cfg.PatchTimeout,
		logger:   logger,
	}
}

// Run patches the resolver, bounded by the configured timeout when set.
// Failures are already logged by the resolver and leave the configuration
// untouched, so Run only records how the step ended.
func (w *PatchWorker) Run(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	err := w.resolver.Patch(ctx)

	switch {
	case errors.Is(err, service.ErrAlreadyPatched):
		w.logger.Debug().Msg("page configuration already patched")
	case err != nil:
		w.logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("patch worker finished without patching")
	default:
		w.logger.Debug().Dur("duration", time.Since(start)).Msg("patch worker finished")
	}
}
