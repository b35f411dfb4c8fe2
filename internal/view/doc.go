// Package view turns a page configuration snapshot into what the visitor
// sees: an HTML document for the HTTP transport and a styled text card for
// the terminal preview.
//
// Rendering only reads the snapshot. Optional fields left unset by the
// configuration (domain, time and ray id) are filled from [RequestInfo] for
// the single render and never written back.
package view
