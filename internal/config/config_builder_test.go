// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultServerShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultCatalogBaseURL, cfg.Catalog.BaseURL)
	assert.Equal(t, DefaultCatalogRequestTimeout, cfg.Catalog.RequestTimeout)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "1.0.0"},
			Catalog: Catalog{BaseURL: "http://env.local", RequestTimeout: time.Second},
		},
		&StructuredConfig{
			Catalog: Catalog{BaseURL: "http://flags.local"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "http://flags.local", cfg.Catalog.BaseURL)
	assert.Equal(t, time.Second, cfg.Catalog.RequestTimeout)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "catalog url without host",
			cfg:     StructuredConfig{Catalog: Catalog{BaseURL: "http://"}},
			wantErr: ErrInvalidCatalogConfigs,
		},
		{
			name:    "negative catalog timeout",
			cfg:     StructuredConfig{Catalog: Catalog{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidCatalogConfigs,
		},
		{
			name:    "negative server timeout",
			cfg:     StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_CatalogURLWithoutSchemeDefaultsToHTTP(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "catalog:8080", want: "http://catalog:8080"},
		{raw: " catalog.local ", want: "http://catalog.local"},
		{raw: "https://catalog.local", want: "https://catalog.local"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{Catalog: Catalog{BaseURL: tt.raw}})

			cfg, err := b.build()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Catalog.BaseURL)
		})
	}
}

func TestWithJSON_UsesPathFromEarlierSources(t *testing.T) {
	p := writeJSONFile(t, `{"app": {"version": "from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p, App: App{Version: "from-env"}})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Version)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestGetStructuredConfig_FromFlags(t *testing.T) {
	cfg, err := GetStructuredConfig([]string{"-catalog-url", "http://flags.local", "-a", ":8082"})

	require.NoError(t, err)
	assert.Equal(t, "http://flags.local", cfg.Catalog.BaseURL)
	assert.Equal(t, ":8082", cfg.Server.HTTPAddress)
}
