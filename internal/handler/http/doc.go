// Package http implements the HTTP transport of the error page service.
//
// Every GET path that is not an API route renders the error page with the
// configured error code as the response status. The current configuration
// snapshot and the build version are exposed under /api. Request tracing,
// access logging and response compression are handled by middleware before
// requests reach the handlers.
package http
