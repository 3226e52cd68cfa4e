// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/handler"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":3000"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.Nil(t, srv)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(noop, config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestServer_RunReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(noop, config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}

func TestNewHTTPServer_RequestDeadline(t *testing.T) {
	var deadlineSet bool
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, deadlineSet = r.Context().Deadline()
	})

	srv := newHTTPServer(noop, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())
	srv.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/heroes", nil))

	assert.True(t, deadlineSet)
}

func TestNewHTTPServer_ExpiredDeadlineKeepsHandlerResponse(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
	}{
		{
			name:       "handler writes after deadline",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusGatewayTimeout) },
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "handler writes nothing",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				tt.write(w)
			})

			srv := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 10 * time.Millisecond}, logger.Nop())
			rec := httptest.NewRecorder()
			srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heroes", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
