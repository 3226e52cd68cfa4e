// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/handler"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if err := s.httpServer.shutdown(); err != nil {
		s.logger.Err(err).Msg("error shutting down server")
	}
}

// run serves until ctx is done or the listener fails, then shuts down
// gracefully and waits for the serving goroutine to return.
func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
