// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-hero-gateway/internal/adapter"
	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/models"
)

type Services struct {
	HeroService    HeroService
	AppInfoService AppInfoService
}

// NewServices assembles the service layer. The hero service is decorated
// with request logging.
func NewServices(catalog adapter.CatalogAdapter, m *metrics.Manager, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	heroService := NewHeroLoggingService(logger).Wrap(NewHeroService(catalog, m, logger))

	return &Services{
		HeroService:    heroService,
		AppInfoService: appInfoService,
	}, nil
}
