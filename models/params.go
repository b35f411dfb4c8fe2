// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorSource names the party blamed for the error on the page.
type ErrorSource string

const (
	// ErrorSourceBrowser blames the visitor's browser.
	ErrorSourceBrowser ErrorSource = "browser"
	// ErrorSourceCloudflare blames the edge network.
	ErrorSourceCloudflare ErrorSource = "cloudflare"
	// ErrorSourceHost blames the origin server.
	ErrorSourceHost ErrorSource = "host"
)

// Status values understood by the page view for a [StatusBlock].
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Params is the display configuration of the error page.
//
// The JSON field names are the public contract of the override fragment
// supplied by operators, so they must stay stable.
type Params struct {
	// Title is the headline text of the page.
	Title string `json:"title"`

	// ErrorCode is the HTTP-style status code shown next to the title.
	ErrorCode int `json:"error_code"`

	// Domain is the host name shown on the page.
	// Nil means the view falls back to the request host.
	Domain *string `json:"domain"`

	// Time is the timestamp shown on the page.
	// Nil means the view falls back to the current UTC time.
	Time *string `json:"time"`

	// RayID is the edge-request identifier shown in the footer.
	// Nil means the view falls back to a random hex identifier.
	RayID *string `json:"ray_id"`

	// ClientIP is the visitor address shown in the footer.
	ClientIP string `json:"client_ip"`

	MoreInformation  MoreInformation `json:"more_information"`
	BrowserStatus    StatusBlock     `json:"browser_status"`
	CloudflareStatus StatusBlock     `json:"cloudflare_status"`
	HostStatus       StatusBlock     `json:"host_status"`

	// ErrorSource selects which of the three status blocks is highlighted.
	ErrorSource ErrorSource `json:"error_source"`

	// WhatHappened and WhatCanIDo are HTML fragments rendered unescaped.
	WhatHappened string `json:"what_happened"`
	WhatCanIDo   string `json:"what_can_i_do"`

	PerfSecBy PerfSecBy `json:"perf_sec_by"`
}

// MoreInformation is the "visit ... for more information" link under the title.
type MoreInformation struct {
	Hidden bool   `json:"hidden"`
	Text   string `json:"text"`
	Link   string `json:"link"`
}

// StatusBlock is one of the browser / edge / host status columns.
type StatusBlock struct {
	// Status is either [StatusOK] or [StatusError].
	Status     string `json:"status"`
	StatusText string `json:"status_text"`
	Location   string `json:"location,omitempty"`
	Name       string `json:"name"`
}

// PerfSecBy is the "Performance & security by" footer link.
type PerfSecBy struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// StringPtr returns a pointer to s. It is handy when filling the nullable
// fields of [Params].
func StringPtr(s string) *string {
	return &s
}
