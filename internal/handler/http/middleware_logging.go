// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", statusOf(ww)).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

// statusOf reports the written status, which is 200 when the handler wrote
// a body without calling WriteHeader or wrote nothing at all.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
