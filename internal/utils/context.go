// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// hero gateway: typed context keys, JSON response writing and HTTP client
// initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-hero-gateway/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// prevents key collisions with other packages that use string keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the caller identity extracted from
// the request headers is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from ctx.
//
// ok is false when no identity was stored. Callers treat that as an
// anonymous request.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
