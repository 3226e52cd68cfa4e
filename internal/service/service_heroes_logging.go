// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/models"
	"github.com/rs/zerolog"
)

type heroLoggingService struct {
	inner HeroService

	logger *logger.Logger
}

// NewHeroLoggingService returns a wrapper that logs every hero call with its
// access mode, duration and outcome. The request-scoped logger is preferred
// so entries carry the trace id; fallback is used outside of a request.
func NewHeroLoggingService(fallback *logger.Logger) HeroServiceWrapper {
	return &heroLoggingService{logger: fallback}
}

func (l *heroLoggingService) Wrap(inner HeroService) HeroService {
	l.inner = inner
	return l
}

func (l *heroLoggingService) ListHeroes(ctx context.Context, identity models.Identity) ([]models.Hero, error) {
	start := time.Now()
	heroes, err := l.inner.ListHeroes(ctx, identity)

	event := l.event(ctx, err).
		Str("operation", "list_heroes").
		Stringer("access_mode", identity.Mode()).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Stringer("kind", KindOf(err)).Msg("list heroes failed")
		return nil, err
	}
	event.Int("heroes", len(heroes)).Msg("list heroes served")

	return heroes, nil
}

func (l *heroLoggingService) GetHero(ctx context.Context, identity models.Identity, heroID string) (models.Hero, error) {
	start := time.Now()
	hero, err := l.inner.GetHero(ctx, identity, heroID)

	event := l.event(ctx, err).
		Str("operation", "get_hero").
		Str("hero_id", heroID).
		Stringer("access_mode", identity.Mode()).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Stringer("kind", KindOf(err)).Msg("get hero failed")
		return models.Hero{}, err
	}
	event.Bool("with_profile", hero.Profile != nil).Msg("get hero served")

	return hero, nil
}

// event picks the log level by outcome: caller mistakes are warnings,
// everything else that fails is an error.
func (l *heroLoggingService) event(ctx context.Context, err error) *zerolog.Event {
	log := l.loggerFor(ctx)

	switch KindOf(err) {
	case 0:
		if err == nil {
			return log.Debug()
		}
		return log.Error()
	case KindValue, KindPermissionDenied, KindNotFound:
		return log.Warn()
	default:
		return log.Error()
	}
}

func (l *heroLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled && l.logger != nil {
		return l.logger
	}
	return log
}
