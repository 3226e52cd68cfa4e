// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(gzip.DefaultCompression, "application/json", "text/plain"))

	// hero routes read the optional caller identity
	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)
		r.Get("/heroes", h.listHeroes)
		r.Get("/heroes/{heroId}", h.getHero)
	})

	router.Get("/version", h.getServerVersion)
	if h.metrics.Enabled() {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
