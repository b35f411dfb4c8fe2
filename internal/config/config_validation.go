// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/cf-error-page/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The page override is deliberately not inspected: a malformed override is
// recovered from at resolution time by falling back to the preset defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Page.Preset == "" {
		cfg.Page.Preset = models.PresetDefault
	}
	if err := models.ValidatePreset(cfg.Page.Preset); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPageConfigs, err)
	}

	if cfg.Adapter.TraceOrigin != "" {
		u, err := url.Parse(cfg.Adapter.TraceOrigin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: trace origin %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.TraceOrigin)
		}
	}

	return nil
}
