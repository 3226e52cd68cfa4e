// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/handler/http"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, logger),
	}, nil
}
