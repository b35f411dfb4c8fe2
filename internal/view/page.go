// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"html/template"
	"net"
	"strings"
	"time"

	"github.com/MKhiriev/cf-error-page/models"
)

// TimeLayout is the format of the fallback timestamp.
const TimeLayout = "2006-01-02 15:04:05 UTC"

// fallbackDomain is shown when neither the configuration nor the request
// provide a host.
const fallbackDomain = "localhost"

// RequestInfo carries the per-render values the page falls back to.
type RequestInfo struct {
	// Host is the raw Host of the request, port and brackets included.
	Host string

	// Now is the render time. Zero means time.Now().
	Now time.Time

	// RayID is used when the configuration has no ray id.
	RayID string
}

// StatusColumn is one of the three status columns of the page.
type StatusColumn struct {
	models.StatusBlock

	// Source is the party this column stands for.
	Source models.ErrorSource

	// Highlighted marks the column blamed for the error.
	Highlighted bool
}

// OK reports whether the column shows a working status.
func (c StatusColumn) OK() bool {
	return c.Status == models.StatusOK
}

// PageData is a fully resolved page: every optional value of the
// configuration has been replaced by its fallback.
type PageData struct {
	Title     string
	ErrorCode int
	Domain    string
	Time      string
	RayID     string
	ClientIP  string

	MoreInformation models.MoreInformation
	Columns         []StatusColumn
	ErrorSource     models.ErrorSource

	WhatHappened template.HTML
	WhatCanIDo   template.HTML

	PerfSecBy models.PerfSecBy
}

// NewPage resolves params against req. A nil or blank optional field counts
// as unset.
func NewPage(params models.Params, req RequestInfo) PageData {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	domain := valueOr(params.Domain, NormalizeHost(req.Host))
	if domain == "" {
		domain = fallbackDomain
	}

	return PageData{
		Title:           params.Title,
		ErrorCode:       params.ErrorCode,
		Domain:          domain,
		Time:            valueOr(params.Time, now.UTC().Format(TimeLayout)),
		RayID:           valueOr(params.RayID, req.RayID),
		ClientIP:        params.ClientIP,
		MoreInformation: params.MoreInformation,
		Columns: []StatusColumn{
			newColumn(params.BrowserStatus, models.ErrorSourceBrowser, params.ErrorSource),
			newColumn(params.CloudflareStatus, models.ErrorSourceCloudflare, params.ErrorSource),
			newColumn(params.HostStatus, models.ErrorSourceHost, params.ErrorSource),
		},
		ErrorSource: params.ErrorSource,
		// operator-supplied markup, rendered as is
		WhatHappened: template.HTML(params.WhatHappened),
		WhatCanIDo:   template.HTML(params.WhatCanIDo),
		PerfSecBy:    params.PerfSecBy,
	}
}

func newColumn(block models.StatusBlock, source, blamed models.ErrorSource) StatusColumn {
	return StatusColumn{
		StatusBlock: block,
		Source:      source,
		Highlighted: source == blamed,
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

// NormalizeHost lower-cases and strips ports, brackets and trailing dots
// from host values.
func NormalizeHost(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if host == "" {
		return ""
	}

	if h, p, err := net.SplitHostPort(host); err == nil && p != "" {
		host = h
	}

	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	return strings.TrimSuffix(host, ".")
}
