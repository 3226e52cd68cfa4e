// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus metrics for the hero gateway.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "hero_gateway"

// Upstream call outcomes used as the "outcome" label.
const (
	OutcomeSuccess          = "success"
	OutcomeUnauthorized     = "unauthorized"
	OutcomeNotFound         = "not_found"
	OutcomeUnexpectedStatus = "unexpected_status"
	OutcomeTransportError   = "transport_error"
)

// Manager owns the collectors of one process. Each Manager registers on its
// own registry so tests can build as many as they need.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Catalog client
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	// Aggregation
	profileFanOut prometheus.Histogram

	// HTTP boundary
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager. Metrics are enabled by default.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.upstreamCalls = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "calls_total",
		Help:      "Total number of remote catalog calls by operation and outcome",
	}, []string{"operation", "outcome"})

	m.upstreamDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "call_duration_seconds",
		Help:      "Latency of remote catalog calls in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.profileFanOut = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "aggregation",
		Name:      "profile_fanout_size",
		Help:      "Number of profile calls dispatched concurrently per list request",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})
}

// Enabled reports whether the manager records anything.
func (m *Manager) Enabled() bool {
	return m != nil && m.enabled
}

// RecordUpstreamCall records one catalog call.
func (m *Manager) RecordUpstreamCall(operation, outcome string, duration time.Duration) {
	if !m.Enabled() {
		return
	}
	m.upstreamCalls.WithLabelValues(operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordProfileFanOut records how many profile calls one request dispatched.
func (m *Manager) RecordProfileFanOut(size int) {
	if !m.Enabled() {
		return
	}
	m.profileFanOut.Observe(float64(size))
}

// RecordHTTPRequest records one served HTTP request.
func (m *Manager) RecordHTTPRequest(route, method, status string, duration time.Duration) {
	if !m.Enabled() {
		return
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Registry returns the registry the collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
