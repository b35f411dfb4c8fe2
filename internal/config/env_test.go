// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/cf-error-page/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"PAGE_PRESET":      "catastrophic",
		"PAGE_CONFIG_JSON": `{"error_code": 502}`,

		"SERVER_ADDRESS":            "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":    "30s",
		"SERVER_TRUST_EDGE_HEADERS": "true",

		"ADAPTER_TRACE_ORIGIN":    "https://example.com",
		"ADAPTER_REQUEST_TIMEOUT": "2s",

		"WORKERS_PATCH_TIMEOUT": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, models.PresetCatastrophic, cfg.Page.Preset)
	assert.Equal(t, `{"error_code": 502}`, cfg.Page.Override)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.TrustEdgeHeaders)

	assert.Equal(t, "https://example.com", cfg.Adapter.TraceOrigin)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Second, cfg.Workers.PatchTimeout)
}

func TestParseEnv_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, models.PresetDefault, cfg.Page.Preset)
	assert.Empty(t, cfg.Page.Override)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Server.TrustEdgeHeaders)
	assert.Empty(t, cfg.Adapter.TraceOrigin)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Workers.PatchTimeout)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
}

func TestParseEnv_OverrideIsKeptVerbatim(t *testing.T) {
	// Arrange: malformed JSON must pass through; the resolver handles it.
	setEnvVars(t, map[string]string{"PAGE_CONFIG_JSON": "{not json"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "{not json", cfg.Page.Override)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_TRUST_EDGE_HEADERS": "maybe"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var envKeys = []string{
	"CONFIG",

	"APP_VERSION",

	"PAGE_PRESET",
	"PAGE_CONFIG_JSON",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_TRUST_EDGE_HEADERS",

	"ADAPTER_TRACE_ORIGIN",
	"ADAPTER_REQUEST_TIMEOUT",

	"WORKERS_PATCH_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
