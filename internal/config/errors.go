// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCatalogConfigs indicates invalid remote catalog settings
	// (for example, a base URL without scheme or host).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
)
