// Package config provides configuration loading, merging, and validation
// facilities for the error page service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
//
// This package configures the service itself. The displayed page
// configuration is only carried through as the raw override string in
// [Page]; merging it onto the preset defaults is the resolver's job.
package config
