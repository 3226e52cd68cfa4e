// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"CATALOG_BASE_URL":        "http://catalog.local",
		"CATALOG_REQUEST_TIMEOUT": "3s",

		"METRICS_ENABLED":   "true",
		"METRICS_NAMESPACE": "heroes",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://catalog.local", cfg.Catalog.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Catalog.RequestTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "heroes", cfg.Metrics.Namespace)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"CATALOG_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
