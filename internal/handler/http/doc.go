// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the hero gateway.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, request metrics, response compression and extraction of the
// caller identity from the "name" and "password" headers happen here before
// requests are delegated to the service layer. Service errors are translated
// into JSON error bodies by statusFromError.
package http
