package http

import (
	"net/http"

	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/utils"
)

// getParams writes the current configuration snapshot together with the
// resolver state.
func (h *Handler) getParams(w http.ResponseWriter, r *http.Request) {
	params, state := h.services.ConfigResolver.Current()

	response := paramsResponse{
		State:  state.String(),
		Params: params,
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing params response")
	}
}
