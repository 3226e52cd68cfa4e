// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote hero catalog.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from the wire protocol. The package ships a REST implementation
// ([NewHTTPCatalogAdapter]) and a Prometheus decorator
// ([NewCatalogMetricsWrapper]).
//
// Non-2xx responses are returned as [*ResponseError], which unwraps to one of
// the sentinel classifications in errors.go ([ErrUnauthorized], [ErrNotFound],
// [ErrUnexpectedStatus]) so callers can use [errors.Is] and read the raw
// reason with [errors.As]. The adapter never looks inside response bodies for
// application-level error codes; that is left to the caller.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hero-gateway/models"
)

//go:generate mockgen -destination=../mock/catalog_adapter_mock.go -package=mock github.com/MKhiriev/go-hero-gateway/internal/adapter CatalogAdapter

// CatalogAdapter issues the four calls of the remote hero catalog. Each call
// is a single outbound request without retries.
type CatalogAdapter interface {
	// ListHeroes calls GET /heroes.
	ListHeroes(ctx context.Context) (models.HeroListResult, error)

	// GetHero calls GET /heroes/{id}.
	GetHero(ctx context.Context, heroID string) (models.HeroResult, error)

	// GetHeroProfile calls GET /heroes/{id}/profile.
	GetHeroProfile(ctx context.Context, heroID string) (models.HeroProfileResult, error)

	// Authenticate calls POST /auth with the given credentials. A nil error
	// means the catalog accepted them.
	Authenticate(ctx context.Context, name, password string) error
}

// CatalogAdapterWrapper decorates a CatalogAdapter with additional behavior
// such as instrumentation.
type CatalogAdapterWrapper interface {
	Wrap(CatalogAdapter) CatalogAdapter
}
