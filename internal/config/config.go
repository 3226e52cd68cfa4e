// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress           = ":3000"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second

	DefaultCatalogBaseURL        = "https://hahow-recruit.herokuapp.com"
	DefaultCatalogRequestTimeout = 10 * time.Second

	DefaultMetricsNamespace = "hero_gateway"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Catalog holds the settings of the remote hero catalog client.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Metrics controls Prometheus instrumentation.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. The host may be empty to listen on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Catalog holds the remote hero catalog settings.
type Catalog struct {
	// BaseURL is the fixed origin every catalog call is sent to.
	// Env: CATALOG_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the transport timeout of one outbound call.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Metrics controls the Prometheus collectors and the /metrics endpoint.
type Metrics struct {
	// Enabled turns instrumentation and the /metrics route on.
	// Env: METRICS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Namespace prefixes every metric name.
	// Env: METRICS_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing values are filled with the package defaults before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
