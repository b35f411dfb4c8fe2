package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/view"
)

// renderPage serves the error page for any path. The configured error code
// becomes the response status.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params := h.services.ConfigResolver.Snapshot()
	if h.trustEdgeHeaders {
		params = patchFromEdgeHeaders(params, r.Header)
	}

	page := view.NewPage(params, view.RequestInfo{
		Host:  r.Host,
		Now:   time.Now(),
		RayID: h.rayIDs.Generate(),
	})

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		log.Err(err).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(pageStatus(params.ErrorCode))
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Msg("error writing page")
	}
}

// pageStatus maps the configured error code to a response status. Codes a
// server cannot send as a final status fall back to 500.
func pageStatus(code int) int {
	switch {
	case code < 200 || code > 599:
		return http.StatusInternalServerError
	case code == http.StatusNoContent, code == http.StatusResetContent, code == http.StatusNotModified:
		// these must not carry the page body
		return http.StatusOK
	default:
		return code
	}
}
