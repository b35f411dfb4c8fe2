package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/utils"
	"github.com/MKhiriev/cf-error-page/models"
)

// TracePath is the well-known path of the edge diagnostic endpoint.
const TracePath = "/cdn-cgi/trace"

type httpTraceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTraceAdapter constructs an HTTP implementation of [TraceAdapter]
// that queries TracePath on adapterCfg.TraceOrigin.
//
// An empty origin is accepted: the returned adapter then fails every call
// with [ErrNoTraceOrigin], which the resolver treats like any other failed
// lookup. Returns an error if the origin is set but cannot be parsed.
func NewHTTPTraceAdapter(adapterCfg config.Adapter, logger *logger.Logger) (TraceAdapter, error) {
	client := utils.NewHTTPClient()

	if strings.TrimSpace(adapterCfg.TraceOrigin) != "" {
		baseURL, err := normalizeBaseURL(adapterCfg.TraceOrigin)
		if err != nil {
			return nil, fmt.Errorf("invalid trace origin: %w", err)
		}
		client.SetBaseURL(baseURL)
	}

	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpTraceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.Scheme + "://" + u.Host, nil
}

// Trace implements [TraceAdapter]. It GETs TracePath, maps non-2xx responses
// to sentinel errors and parses the plain-text body and the Cf-Ray header.
func (h *httpTraceAdapter) Trace(ctx context.Context) (models.TraceInfo, error) {
	if h.client.BaseURL == "" {
		return models.TraceInfo{}, ErrNoTraceOrigin
	}

	start := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(TracePath)
	if err != nil {
		return models.TraceInfo{}, fmt.Errorf("trace request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TraceInfo{}, fmt.Errorf("trace response: %w", err)
	}

	info := ParseTraceBody(string(resp.Body()))
	info.Ray = strings.TrimSpace(resp.Header().Get(RayHeader))

	h.logger.Debug().
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("ip", info.IP).
		Str("colo", info.Colo).
		Str("ray", info.Ray).
		Msg("trace fetched")

	return info, nil
}
