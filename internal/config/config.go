// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/MKhiriev/cf-error-page/models"
)

// StructuredConfig is the top-level configuration container for the
// error page service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Page holds the page preset and the operator-supplied override fragment.
	Page Page `envPrefix:"PAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound diagnostic endpoint client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the background patch worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Page holds what the displayed configuration is built from.
type Page struct {
	// Preset selects the built-in defaults the override is merged onto.
	// Env: PAGE_PRESET
	Preset models.Preset `env:"PRESET" envDefault:"default"`

	// Override is a JSON-serialized partial page configuration. Malformed
	// values are logged and ignored at resolution time, never rejected here.
	// Env: PAGE_CONFIG_JSON
	Override string `env:"CONFIG_JSON"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// TrustEdgeHeaders enables the per-request patch from the
	// CF-Connecting-IP and Cf-Ray headers of inbound requests. Only enable it
	// when the service is reachable exclusively through the edge network.
	//
	// While it is off, the client IP shown on the page comes from the startup
	// lookup against TraceOrigin. That lookup is made by this server, so every
	// visitor sees the server's own outbound address.
	// Env: SERVER_TRUST_EDGE_HEADERS
	TrustEdgeHeaders bool `env:"TRUST_EDGE_HEADERS"`
}

// Adapter holds settings of the diagnostic endpoint client.
type Adapter struct {
	// TraceOrigin is the origin ("https://example.com") whose
	// /cdn-cgi/trace is queried once at startup. Empty disables the lookup.
	// The origin must carry a scheme and a host. The address the lookup
	// reports is the server's own, see [Server.TrustEdgeHeaders].
	// Env: ADAPTER_TRACE_ORIGIN
	TraceOrigin string `env:"TRACE_ORIGIN"`

	// RequestTimeout bounds the diagnostic request (e.g. "5s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PatchTimeout bounds the whole one-shot patch step, including the
	// diagnostic request. Zero waits for as long as the request takes.
	// Env: WORKERS_PATCH_TIMEOUT
	PatchTimeout time.Duration `env:"PATCH_TIMEOUT"`
}

// ShowsServerAddress reports whether the page will display the server's own
// outbound address as the client IP: a startup lookup is configured and
// inbound edge headers are not trusted.
func (cfg *StructuredConfig) ShowsServerAddress() bool {
	return strings.TrimSpace(cfg.Adapter.TraceOrigin) != "" && !cfg.Server.TrustEdgeHeaders
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
