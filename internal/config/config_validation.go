// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}
	cfg.Catalog.BaseURL = strings.TrimSpace(cfg.Catalog.BaseURL)
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = DefaultCatalogBaseURL
	}
	// host:port without a scheme is served over plain http, as the adapter does
	if !strings.Contains(cfg.Catalog.BaseURL, "://") {
		cfg.Catalog.BaseURL = "http://" + cfg.Catalog.BaseURL
	}
	if cfg.Catalog.RequestTimeout == 0 {
		cfg.Catalog.RequestTimeout = DefaultCatalogRequestTimeout
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Catalog.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidCatalogConfigs)
	}

	u, err := url.Parse(cfg.Catalog.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalogConfigs, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url must include scheme and host", ErrInvalidCatalogConfigs)
	}

	return nil
}
