// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external collaborators of the
// error page service.
//
// The primary abstraction is [TraceAdapter], which fetches the edge
// diagnostic endpoint (/cdn-cgi/trace) and turns its plain-text body and
// response headers into a [models.TraceInfo]. The package ships an HTTP
// implementation built on resty ([NewHTTPTraceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/cf-error-page/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/trace_adapter_mock.go -package=mock

// TraceAdapter fetches diagnostic information about the current request from
// the edge network.
type TraceAdapter interface {
	// Trace issues one request to the diagnostic endpoint and returns whatever
	// could be extracted from it. Missing fields are left empty and are not an
	// error; transport failures and non-2xx responses are.
	Trace(ctx context.Context) (models.TraceInfo, error)
}
