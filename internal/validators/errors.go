// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrIncompleteIdentity = errors.New("name and password must be given together")
)
