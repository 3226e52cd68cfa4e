// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Transport status classifications of a failed catalog call.
var (
	ErrUnauthorized     = errors.New("catalog unauthorized")
	ErrNotFound         = errors.New("catalog not found")
	ErrUnexpectedStatus = errors.New("catalog unexpected status")
)

// ResponseError is returned for every non-2xx catalog response.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Reason is the trimmed response body, or the status text when the body
	// was empty.
	Reason string
	// Err is one of ErrUnauthorized, ErrNotFound or ErrUnexpectedStatus.
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v (http %d): %s", e.Err, e.StatusCode, e.Reason)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
