// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TraceInfo holds what was learned about the current request from the edge
// diagnostic endpoint (or from the edge headers of an inbound request).
// Empty strings mean the value was not available.
type TraceInfo struct {
	// IP is the visitor address, an IPv4 or IPv6 literal.
	IP string `json:"ip,omitempty"`

	// Colo is the three-letter facility code of the serving edge location.
	Colo string `json:"colo,omitempty"`

	// Ray is the raw edge-request identifier, "<hex-id>-<facility-code>".
	Ray string `json:"ray,omitempty"`

	// Fields holds every key=value line of the diagnostic response body.
	Fields map[string]string `json:"fields,omitempty"`
}

// ParamsUpdate is the set of fields a trace lookup changes on [Params].
// Nil fields are left untouched.
type ParamsUpdate struct {
	ClientIP         *string
	RayID            *string
	CloudflareStatus *StatusBlock
}

// IsEmpty reports whether applying u would change nothing.
func (u ParamsUpdate) IsEmpty() bool {
	return u.ClientIP == nil && u.RayID == nil && u.CloudflareStatus == nil
}

// ResolverState is the lifecycle stage of the page configuration.
type ResolverState int

const (
	// StateUnresolved is the state before the initial merge is computed.
	StateUnresolved ResolverState = iota
	// StateResolved means the initial configuration is available.
	StateResolved
	// StatePatched means the diagnostic lookup has settled, successfully or not.
	StatePatched
)

func (s ResolverState) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StatePatched:
		return "patched"
	default:
		return "unresolved"
	}
}
