// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/service"
	"github.com/MKhiriev/go-hero-gateway/internal/utils"
)

// statusFromError returns the HTTP status for err together with the message
// the caller may see. An expired request deadline is a gateway timeout
// whatever the service made of it. Unclassified errors and upstream failures
// are reported as a generic server error so no remote detail leaks out.
func statusFromError(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, msgGatewayTimeout
	}

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError, msgServerError
	}

	status := svcErr.Kind.StatusCode()
	if status == http.StatusInternalServerError {
		return status, msgServerError
	}
	return status, svcErr.Message
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if _, writeErr := utils.WriteError(w, message, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
