package service

import (
	"fmt"

	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/models"
)

type Services struct {
	ConfigResolver ConfigResolver
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, trace adapter.TraceAdapter, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ConfigResolver: NewConfigResolver(cfg.Page, trace, logger),
		AppInfoService: appInfoService,
	}, nil
}
