// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-hero-gateway/internal/adapter"
	"github.com/MKhiriev/go-hero-gateway/internal/validators"
	"github.com/MKhiriev/go-hero-gateway/models"
)

// ResolveAccessMode decides how a request is served from its credentials
// alone. No remote call is made.
//
// Both halves empty yields anonymous access, both present yields
// authenticated access. A credential with only one half is a value error.
func ResolveAccessMode(identity models.Identity) (models.AccessMode, error) {
	return resolveAccessMode(context.Background(), validators.NewIdentityValidator(), identity)
}

func resolveAccessMode(ctx context.Context, validator validators.Validator, identity models.Identity) (models.AccessMode, error) {
	if err := validator.Validate(ctx, identity); err != nil {
		return identity.Mode(), NewValueError(msgMissingCredential, err)
	}
	return identity.Mode(), nil
}

// session is the per-request state of one aggregation call.
type session struct {
	identity models.Identity
	mode     models.AccessMode

	catalog   adapter.CatalogAdapter
	validator validators.Validator
}

func newSession(identity models.Identity, catalog adapter.CatalogAdapter, validator validators.Validator) *session {
	return &session{
		identity:  identity,
		catalog:   catalog,
		validator: validator,
	}
}

// open resolves the access mode and, for authenticated sessions, checks the
// credentials upstream. Anonymous sessions make no remote call here.
func (s *session) open(ctx context.Context) error {
	mode, err := resolveAccessMode(ctx, s.validator, s.identity)
	if err != nil {
		return err
	}
	s.mode = mode

	if s.mode == models.AccessModeAnonymous {
		return nil
	}
	return s.authenticate(ctx)
}

func (s *session) authenticated() bool {
	return s.mode == models.AccessModeAuthenticated
}

// authenticate verifies the session credentials against the catalog. It
// runs after open has accepted the credential. Rejected credentials become a
// permission denied error; any other failure is returned as is.
func (s *session) authenticate(ctx context.Context) error {
	err := s.catalog.Authenticate(ctx, s.identity.Name, s.identity.Password)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return NewPermissionDeniedError(msgWrongCredential, err)
	}
	return err
}
