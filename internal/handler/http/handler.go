package http

import (
	"fmt"

	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/service"
	"github.com/MKhiriev/cf-error-page/internal/utils"
	"github.com/MKhiriev/cf-error-page/internal/view"
)

type Handler struct {
	services *service.Services
	renderer *view.Renderer
	rayIDs   *utils.RayIDGenerator

	trustEdgeHeaders bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error creating page renderer: %w", err)
	}

	logger.Info().Bool("trust_edge_headers", cfg.TrustEdgeHeaders).Msg("http handler created")
	return &Handler{
		services:         services,
		renderer:         renderer,
		rayIDs:           utils.NewRayIDGenerator(),
		trustEdgeHeaders: cfg.TrustEdgeHeaders,
		logger:           logger,
	}, nil
}
