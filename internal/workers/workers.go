package workers

import (
	"context"

	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the service: currently the
// one-shot patch of the page configuration.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewPatchWorker(services.ConfigResolver, cfg, logger),
		},
	}
}

// Run runs every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
