// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hero-gateway/internal/utils"
	"github.com/MKhiriev/go-hero-gateway/models"
)

const (
	nameHeader     = "name"
	passwordHeader = "password"
)

// withIdentity stores the caller credential found in the "name" and
// "password" headers in the request context. A missing header is read as an
// empty value; deciding whether the pair is usable is left to the service.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := models.Identity{
			Name:     r.Header.Get(nameHeader),
			Password: r.Header.Get(passwordHeader),
		}

		ctx := utils.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
