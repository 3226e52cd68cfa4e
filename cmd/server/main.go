// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-hero-gateway/internal/adapter"
	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/handler"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/internal/server"
	"github.com/MKhiriev/go-hero-gateway/internal/service"
	"github.com/MKhiriev/go-hero-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("hero-gateway")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	metricsManager := metrics.NewManager(
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
		metrics.WithNamespace(cfg.Metrics.Namespace),
	)

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}
	catalog = adapter.NewCatalogMetricsWrapper(metricsManager).Wrap(catalog)

	services, err := service.NewServices(catalog, metricsManager, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metricsManager, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
