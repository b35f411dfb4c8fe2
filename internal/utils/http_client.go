package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies outbound requests made by the service.
const userAgent = "cf-error-page"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com/cdn-cgi/trace")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with its own
// connection pool. Every request carries the service User-Agent and no
// retries are configured: callers decide what a failure means.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
