// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-hero-gateway/internal/config"
	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/utils"
	"github.com/MKhiriev/go-hero-gateway/models"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the REST implementation of
// [CatalogAdapter]. It normalises and validates cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and call timeout.
// Retries stay disabled.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPCatalogAdapter(cfg config.Catalog, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	logger.Info().Str("base_url", baseURL).Dur("timeout", timeout).Msg("catalog adapter created")

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListHeroes implements [CatalogAdapter]. The body is decoded either as a
// hero array or as an embedded error object; see [models.HeroListResult].
func (a *httpCatalogAdapter) ListHeroes(ctx context.Context) (models.HeroListResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/heroes")
	if err != nil {
		return models.HeroListResult{}, fmt.Errorf("list heroes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeroListResult{}, err
	}

	var result models.HeroListResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.HeroListResult{}, fmt.Errorf("decode list heroes response: %w", err)
	}

	return result, nil
}

// GetHero implements [CatalogAdapter].
func (a *httpCatalogAdapter) GetHero(ctx context.Context, heroID string) (models.HeroResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("heroId", heroID).
		Get("/heroes/{heroId}")
	if err != nil {
		return models.HeroResult{}, fmt.Errorf("get hero %s request: %w", heroID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeroResult{}, err
	}

	var result models.HeroResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.HeroResult{}, fmt.Errorf("decode get hero %s response: %w", heroID, err)
	}

	return result, nil
}

// GetHeroProfile implements [CatalogAdapter].
func (a *httpCatalogAdapter) GetHeroProfile(ctx context.Context, heroID string) (models.HeroProfileResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("heroId", heroID).
		Get("/heroes/{heroId}/profile")
	if err != nil {
		return models.HeroProfileResult{}, fmt.Errorf("get hero %s profile request: %w", heroID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeroProfileResult{}, err
	}

	var result models.HeroProfileResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.HeroProfileResult{}, fmt.Errorf("decode get hero %s profile response: %w", heroID, err)
	}

	return result, nil
}

// Authenticate implements [CatalogAdapter]. The catalog answers 200 with no
// meaningful body on success and 401 on rejected credentials.
func (a *httpCatalogAdapter) Authenticate(ctx context.Context, name, password string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Name: name, Password: password}).
		Post("/auth")
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}

	return mapHTTPError(resp)
}
