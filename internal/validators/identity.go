// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-hero-gateway/models"
)

const (
	FieldName     = "name"
	FieldPassword = "password"
)

// IdentityValidator checks caller credentials.
//
// Without fields it enforces the both-or-none rule: a credential is either
// absent entirely or carries both halves. With fields, every named half must
// be non-empty.
type IdentityValidator struct {
}

func NewIdentityValidator() Validator {
	return &IdentityValidator{}
}

func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Identity:
		return v.validateIdentity(ctx, value, fields...)
	case *models.Identity:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateIdentity(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IdentityValidator) validateIdentity(_ context.Context, identity models.Identity, fields ...string) error {
	if len(fields) == 0 {
		if (identity.Name == "") != (identity.Password == "") {
			return ErrIncompleteIdentity
		}
		return nil
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if identity.Name == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if identity.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
