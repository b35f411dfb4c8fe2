package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/service"
	"github.com/MKhiriev/cf-error-page/models"
)

// ConnectingIPHeader is set by the edge network to the visitor address.
const ConnectingIPHeader = "CF-Connecting-IP"

// edgeTraceInfo reads the visitor address and the edge-request identifier
// that the edge network attaches to proxied requests.
func edgeTraceInfo(header http.Header) models.TraceInfo {
	var info models.TraceInfo

	if ip := net.ParseIP(strings.TrimSpace(header.Get(ConnectingIPHeader))); ip != nil {
		info.IP = ip.String()
	}
	info.Ray = strings.TrimSpace(header.Get(adapter.RayHeader))

	return info
}

// patchFromEdgeHeaders applies the edge headers of one request to a copy of
// params. The held configuration is not changed.
func patchFromEdgeHeaders(params models.Params, header http.Header) models.Params {
	info := edgeTraceInfo(header)
	if info.IP == "" && info.Ray == "" {
		return params
	}
	return service.ApplyUpdate(params, service.BuildUpdate(params, info))
}
