// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/models"
)

// Operation labels reported for each catalog call.
const (
	OperationListHeroes     = "list_heroes"
	OperationGetHero        = "get_hero"
	OperationGetHeroProfile = "get_hero_profile"
	OperationAuthenticate   = "authenticate"
)

type catalogMetricsWrapper struct {
	inner   CatalogAdapter
	metrics *metrics.Manager
}

// NewCatalogMetricsWrapper returns a wrapper recording call count, outcome
// and latency of every catalog call on m.
func NewCatalogMetricsWrapper(m *metrics.Manager) CatalogAdapterWrapper {
	return &catalogMetricsWrapper{metrics: m}
}

func (w *catalogMetricsWrapper) Wrap(inner CatalogAdapter) CatalogAdapter {
	w.inner = inner
	return w
}

func (w *catalogMetricsWrapper) ListHeroes(ctx context.Context) (models.HeroListResult, error) {
	start := time.Now()
	result, err := w.inner.ListHeroes(ctx)
	w.metrics.RecordUpstreamCall(OperationListHeroes, outcomeOf(err), time.Since(start))
	return result, err
}

func (w *catalogMetricsWrapper) GetHero(ctx context.Context, heroID string) (models.HeroResult, error) {
	start := time.Now()
	result, err := w.inner.GetHero(ctx, heroID)
	w.metrics.RecordUpstreamCall(OperationGetHero, outcomeOf(err), time.Since(start))
	return result, err
}

func (w *catalogMetricsWrapper) GetHeroProfile(ctx context.Context, heroID string) (models.HeroProfileResult, error) {
	start := time.Now()
	result, err := w.inner.GetHeroProfile(ctx, heroID)
	w.metrics.RecordUpstreamCall(OperationGetHeroProfile, outcomeOf(err), time.Since(start))
	return result, err
}

func (w *catalogMetricsWrapper) Authenticate(ctx context.Context, name, password string) error {
	start := time.Now()
	err := w.inner.Authenticate(ctx, name, password)
	w.metrics.RecordUpstreamCall(OperationAuthenticate, outcomeOf(err), time.Since(start))
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrUnauthorized):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrUnexpectedStatus):
		return metrics.OutcomeUnexpectedStatus
	default:
		return metrics.OutcomeTransportError
	}
}
