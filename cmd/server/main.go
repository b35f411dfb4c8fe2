package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/config"
	"github.com/MKhiriev/cf-error-page/internal/handler"
	"github.com/MKhiriev/cf-error-page/internal/logger"
	"github.com/MKhiriev/cf-error-page/internal/server"
	"github.com/MKhiriev/cf-error-page/internal/service"
	"github.com/MKhiriev/cf-error-page/internal/workers"
	"github.com/MKhiriev/cf-error-page/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("cf-error-page")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")
	if cfg.ShowsServerAddress() {
		log.Warn().
			Str("trace_origin", cfg.Adapter.TraceOrigin).
			Msg("edge headers are not trusted, the page will show this server's outbound address as the client IP")
	}

	traceAdapter, err := adapter.NewHTTPTraceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating trace adapter")
	}

	services, err := service.NewServices(*cfg, traceAdapter, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	services.ConfigResolver.OnUpdate(func(params models.Params, state models.ResolverState) {
		log.Info().
			Str("state", state.String()).
			Int("error_code", params.ErrorCode).
			Str("client_ip", params.ClientIP).
			Str("location", params.CloudflareStatus.Location).
			Msg("page configuration updated")
	})

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// the page is served with the initial configuration while the lookup runs
	go workers.NewWorkers(services, cfg.Workers, log).Run(context.Background())

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", valueOrNA(build.BuildVersion()))
	fmt.Printf("Build date: %s\n", valueOrNA(build.BuildDate()))
	fmt.Printf("Build commit: %s\n", valueOrNA(build.BuildCommit()))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
