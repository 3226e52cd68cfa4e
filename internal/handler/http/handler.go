// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Manager

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. m may be nil, in which case request
// metrics are not recorded and /metrics is not served.
func NewHandler(services *service.Services, m *metrics.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}
