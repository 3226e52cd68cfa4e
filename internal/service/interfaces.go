// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-hero-gateway/models"
)

// HeroService aggregates catalog data for a single caller request.
//
// Anonymous callers get catalog records as-is, without profiles. A caller
// presenting both name and password is authenticated first and then gets
// every hero enriched with its profile, or an error if any enrichment fails.
// Failures are reported as [*Error].
type HeroService interface {
	ListHeroes(ctx context.Context, identity models.Identity) ([]models.Hero, error)
	GetHero(ctx context.Context, identity models.Identity, heroID string) (models.Hero, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HeroServiceWrapper defines middleware composition for HeroService.
// Implementations wrap an existing HeroService to add behavior such as
// logging.
type HeroServiceWrapper interface {
	Wrap(HeroService) HeroService // returns a decorated HeroService applying additional behavior
}
