package handler

import (
	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/handler/http"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
