// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Preset names a built-in set of page defaults that the override fragment is
// merged on top of.
type Preset string

const (
	// PresetDefault is a 500 internal error blamed on the edge network.
	PresetDefault Preset = "default"
	// PresetCatastrophic is a 503 where every party is failing.
	PresetCatastrophic Preset = "catastrophic"
	// PresetWorking is a 200 page where everything is fine.
	PresetWorking Preset = "working"
)

// ErrUnknownPreset is returned by [ValidatePreset] for names not listed by
// [ListPresets].
var ErrUnknownPreset = errors.New("unknown page preset")

// ListPresets returns every supported preset.
func ListPresets() []Preset {
	return []Preset{
		PresetDefault,
		PresetCatastrophic,
		PresetWorking,
	}
}

// ValidatePreset checks that preset is one of [ListPresets].
func ValidatePreset(preset Preset) error {
	for _, possible := range ListPresets() {
		if preset == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPreset, preset)
}

// ParamsFor returns a fresh copy of the defaults of preset. Unknown and empty
// names resolve to [DefaultParams].
func ParamsFor(preset Preset) Params {
	switch preset {
	case PresetCatastrophic:
		return CatastrophicParams()
	case PresetWorking:
		return WorkingParams()
	default:
		return DefaultParams()
	}
}

// DefaultParams returns the built-in page configuration.
//
// The edge location is left unset so that the facility code reported by the
// diagnostic endpoint can fill it in.
func DefaultParams() Params {
	return Params{
		Title:     "Internal server error",
		ErrorCode: 500,
		ClientIP:  "127.0.0.1",
		MoreInformation: MoreInformation{
			Hidden: false,
			Text:   "cloudflare.com",
			Link:   "https://www.cloudflare.com",
		},
		BrowserStatus: StatusBlock{
			Status:     StatusOK,
			StatusText: "Working",
			Location:   "You",
			Name:       "Browser",
		},
		CloudflareStatus: StatusBlock{
			Status:     StatusError,
			StatusText: "Error",
			Name:       "Cloudflare",
		},
		HostStatus: StatusBlock{
			Status:     StatusOK,
			StatusText: "Working",
			Name:       "Host",
		},
		ErrorSource:  ErrorSourceCloudflare,
		WhatHappened: "<p>There is an internal server error on Cloudflare's network.</p>",
		WhatCanIDo:   "<p>Please try again in a few minutes.</p>",
		PerfSecBy: PerfSecBy{
			Text: "Cloudflare",
			Link: "https://www.cloudflare.com",
		},
	}
}

// CatastrophicParams returns defaults for a total outage page.
func CatastrophicParams() Params {
	p := DefaultParams()
	p.Title = "Catastrophic infrastructure failure"
	p.ErrorCode = 503
	p.MoreInformation = MoreInformation{
		Text: "cloudflare.com",
		Link: "https://www.cloudflarestatus.com",
	}
	p.BrowserStatus = StatusBlock{
		Status:     StatusError,
		StatusText: "Out of Memory",
		Location:   "Your Device",
		Name:       "Browser",
	}
	p.CloudflareStatus = StatusBlock{
		Status:     StatusError,
		StatusText: "Critical Failure",
		Location:   "Global Network",
		Name:       "Cloudflare",
	}
	p.HostStatus = StatusBlock{
		Status:     StatusError,
		StatusText: "On Fire",
		Location:   "Origin Server",
		Name:       "Host",
	}
	p.WhatHappened = "<p>There is a catastrophic failure.</p>"
	p.WhatCanIDo = "<p>Please try again in a few years.</p>"
	return p
}

// WorkingParams returns defaults for a page reporting that everything works.
func WorkingParams() Params {
	p := DefaultParams()
	p.Title = "Web server is working"
	p.ErrorCode = 200
	p.MoreInformation = MoreInformation{Hidden: true}
	p.BrowserStatus = StatusBlock{
		Status:     StatusOK,
		StatusText: "Seems Working",
		Location:   "You",
		Name:       "Browser",
	}
	p.CloudflareStatus = StatusBlock{
		Status:     StatusOK,
		StatusText: "Often Working",
		Location:   "Cloud",
		Name:       "Cloudflare",
	}
	p.HostStatus = StatusBlock{
		Status:     StatusOK,
		StatusText: "Just Working",
		Name:       "Host",
	}
	p.ErrorSource = ErrorSourceHost
	p.WhatHappened = "<p>This site is still working. And it looks great.</p>"
	p.WhatCanIDo = "<p>Visit the site before it crashes someday.</p>"
	return p
}
