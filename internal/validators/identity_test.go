// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-hero-gateway/models"
	"github.com/stretchr/testify/assert"
)

func TestIdentityValidator_BothOrNone(t *testing.T) {
	v := NewIdentityValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		identity models.Identity
		wantErr  error
	}{
		{name: "anonymous", identity: models.Identity{}},
		{name: "complete", identity: models.Identity{Name: "hahow", Password: "rocks"}},
		{name: "name only", identity: models.Identity{Name: "hahow"}, wantErr: ErrIncompleteIdentity},
		{name: "password only", identity: models.Identity{Password: "rocks"}, wantErr: ErrIncompleteIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.identity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIdentityValidator_RequiredFields(t *testing.T) {
	v := NewIdentityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Identity{Name: "hahow", Password: "rocks"}, FieldName, FieldPassword))
	assert.ErrorIs(t, v.Validate(ctx, models.Identity{Password: "rocks"}, FieldName, FieldPassword), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.Identity{Name: "hahow"}, FieldName, FieldPassword), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, &models.Identity{}, FieldPassword), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Identity{Name: "hahow"}, FieldName))
}

func TestIdentityValidator_UnknownFieldAndType(t *testing.T) {
	v := NewIdentityValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Identity{Name: "a", Password: "b"}, "token"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, "hahow"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Identity)(nil)), ErrUnsupportedType)
}
