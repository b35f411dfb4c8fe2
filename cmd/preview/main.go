// Command preview resolves the page configuration the same way the server
// does and prints the page as a terminal card.
//
// It accepts the server's flags and environment. When a trace origin is
// configured, the diagnostic lookup runs before printing.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/service"
	"github.com/MKhiriev/cf-error-page/internal/utils"
	"github.com/MKhiriev/cf-error-page/internal/view"
	"github.com/MKhiriev/cf-error-page/internal/workers"
)

func main() {
	log := logger.NewLoggerTo("cf-error-page-preview", os.Stderr)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var trace adapter.TraceAdapter
	if cfg.Adapter.TraceOrigin != "" {
		trace, err = adapter.NewHTTPTraceAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating trace adapter")
		}
	}

	resolver := service.NewConfigResolver(cfg.Page, trace, log)
	if trace != nil {
		workers.NewPatchWorker(resolver, cfg.Workers, log).Run(context.Background())
	}

	host, _ := os.Hostname()
	page := view.NewPage(resolver.Snapshot(), view.RequestInfo{
		Host:  host,
		Now:   time.Now(),
		RayID: utils.NewRayIDGenerator().Generate(),
	})

	fmt.Println(view.RenderText(page))
}
