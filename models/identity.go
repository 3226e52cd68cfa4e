// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessMode tells whether a request is served anonymously or on behalf of
// an authenticated caller.
type AccessMode int

const (
	// AccessModeAnonymous serves catalog data as is.
	AccessModeAnonymous AccessMode = iota
	// AccessModeAuthenticated verifies credentials upstream and enriches
	// every hero with its profile.
	AccessModeAuthenticated
)

func (m AccessMode) String() string {
	switch m {
	case AccessModeAnonymous:
		return "anonymous"
	case AccessModeAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the caller credential taken from the request headers.
// An empty string means the header was absent.
type Identity struct {
	Name     string `json:"name"`
	Password string `json:"-"`
}

// Mode derives the access mode: any non-empty half switches the request to
// authenticated mode. A half-filled identity still reports authenticated;
// the mismatch is rejected later when the credentials are checked.
func (i Identity) Mode() AccessMode {
	if i.Name != "" || i.Password != "" {
		return AccessModeAuthenticated
	}
	return AccessModeAnonymous
}

// Complete reports whether both name and password are present.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Password != ""
}

// AuthRequest is the body of POST /auth on the remote catalog.
type AuthRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
