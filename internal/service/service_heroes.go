// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hero-gateway/internal/adapter"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/metrics"
	"github.com/MKhiriev/go-hero-gateway/internal/validators"
	"github.com/MKhiriev/go-hero-gateway/models"
	"golang.org/x/sync/errgroup"
)

// heroService is the aggregation engine behind [HeroService]. It holds no
// per-request state; every call opens its own session.
type heroService struct {
	catalog   adapter.CatalogAdapter
	validator validators.Validator
	metrics   *metrics.Manager

	logger *logger.Logger
}

// NewHeroService builds the aggregation engine on top of catalog. m may be
// nil, in which case no fan-out metrics are recorded.
func NewHeroService(catalog adapter.CatalogAdapter, m *metrics.Manager, logger *logger.Logger) HeroService {
	return &heroService{
		catalog:   catalog,
		validator: validators.NewIdentityValidator(),
		metrics:   m,
		logger:    logger,
	}
}

type profileOutcome struct {
	result models.HeroProfileResult
	err    error
}

type heroOutcome struct {
	result models.HeroResult
	err    error
}

// ListHeroes implements [HeroService].
func (s *heroService) ListHeroes(ctx context.Context, identity models.Identity) ([]models.Hero, error) {
	sess := newSession(identity, s.catalog, s.validator)
	if err := sess.open(ctx); err != nil {
		return nil, err
	}

	list, err := s.catalog.ListHeroes(ctx)
	if err != nil {
		return nil, NewUpstreamError(fmt.Sprintf("list heroes: %s", reasonOf(err)), err)
	}
	if list.Failed() {
		return nil, NewUpstreamError(list.Message, nil)
	}

	heroes := list.Heroes
	if heroes == nil {
		heroes = []models.Hero{}
	}

	if !sess.authenticated() {
		anonymous := make([]models.Hero, len(heroes))
		for i, hero := range heroes {
			anonymous[i] = hero.WithoutProfile()
		}
		return anonymous, nil
	}

	s.metrics.RecordProfileFanOut(len(heroes))
	outcomes := s.fetchProfiles(ctx, heroes)

	profiles := make(map[string]models.HeroProfile, len(heroes))
	for i, outcome := range outcomes {
		if outcome.err != nil {
			if errors.Is(outcome.err, adapter.ErrNotFound) {
				return nil, NewNotFoundError(reasonOf(outcome.err), outcome.err)
			}
			return nil, NewUpstreamError(reasonOf(outcome.err), outcome.err)
		}
		if outcome.result.Failed() {
			return nil, NewUpstreamError(outcome.result.Message, nil)
		}
		profiles[heroes[i].ID] = outcome.result.HeroProfile
	}

	enriched := make([]models.Hero, len(heroes))
	for i, hero := range heroes {
		enriched[i] = hero.WithProfile(profiles[hero.ID])
	}

	return enriched, nil
}

// fetchProfiles requests every hero's profile concurrently and waits for all
// of them. Outcomes are addressed by the hero's position in heroes. Tasks
// never fail the group, so one failure does not cancel its siblings.
func (s *heroService) fetchProfiles(ctx context.Context, heroes []models.Hero) []profileOutcome {
	outcomes := make([]profileOutcome, len(heroes))

	var g errgroup.Group
	for i, hero := range heroes {
		i, hero := i, hero
		g.Go(func() error {
			result, err := s.catalog.GetHeroProfile(ctx, hero.ID)
			outcomes[i] = profileOutcome{result: result, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// GetHero implements [HeroService].
func (s *heroService) GetHero(ctx context.Context, identity models.Identity, heroID string) (models.Hero, error) {
	if strings.TrimSpace(heroID) == "" {
		return models.Hero{}, NewValueError(msgMissingHeroID, nil)
	}

	sess := newSession(identity, s.catalog, s.validator)
	if err := sess.open(ctx); err != nil {
		return models.Hero{}, err
	}

	if !sess.authenticated() {
		return s.getAnonymousHero(ctx, heroID)
	}
	return s.getEnrichedHero(ctx, heroID)
}

func (s *heroService) getAnonymousHero(ctx context.Context, heroID string) (models.Hero, error) {
	result, err := s.catalog.GetHero(ctx, heroID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Hero{}, NewNotFoundError(notFoundMessage(heroID, err), err)
		}
		return models.Hero{}, NewUpstreamError(fmt.Sprintf("id %s: %s", heroID, reasonOf(err)), err)
	}
	if result.Failed() {
		return models.Hero{}, NewUpstreamError(result.Message, nil)
	}

	return result.Hero.WithoutProfile(), nil
}

// getEnrichedHero fetches the hero and its profile concurrently. The hero
// call is inspected before the profile call, so with both failing the hero
// failure is reported.
func (s *heroService) getEnrichedHero(ctx context.Context, heroID string) (models.Hero, error) {
	var (
		hero    heroOutcome
		profile profileOutcome
		g       errgroup.Group
	)

	g.Go(func() error {
		hero.result, hero.err = s.catalog.GetHero(ctx, heroID)
		return nil
	})
	g.Go(func() error {
		profile.result, profile.err = s.catalog.GetHeroProfile(ctx, heroID)
		return nil
	})
	_ = g.Wait()

	if hero.err != nil {
		return models.Hero{}, NewNotFoundError(notFoundMessage(heroID, hero.err), hero.err)
	}
	if hero.result.Failed() {
		return models.Hero{}, NewUpstreamError(hero.result.Message, nil)
	}
	if profile.err != nil {
		return models.Hero{}, NewNotFoundError(notFoundMessage(heroID, profile.err), profile.err)
	}
	if profile.result.Failed() {
		return models.Hero{}, NewUpstreamError(profile.result.Message, nil)
	}

	return hero.result.Hero.WithProfile(profile.result.HeroProfile), nil
}

func notFoundMessage(heroID string, err error) string {
	return fmt.Sprintf("id %s: %s", heroID, reasonOf(err))
}

// reasonOf extracts the remote failure reason carried by err.
func reasonOf(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Reason != "" {
		return respErr.Reason
	}
	return err.Error()
}
