// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"
)

// ErrorKind classifies every failure the hero service reports to its callers.
type ErrorKind int

const (
	// KindValue means the caller supplied malformed input.
	KindValue ErrorKind = iota + 1
	// KindPermissionDenied means the catalog rejected the credentials.
	KindPermissionDenied
	// KindNotFound means a hero or its profile does not exist upstream.
	KindNotFound
	// KindUpstream covers every other catalog failure, including embedded
	// error codes in otherwise successful responses.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// StatusCode returns the HTTP status a boundary reports for the kind.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindValue:
		return http.StatusBadRequest
	case KindPermissionDenied:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed failure returned by [HeroService]. Message is safe to
// show to the caller; Err keeps the underlying cause for errors.Is/As.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for matching by kind with errors.Is.
var (
	ErrValue            = &Error{Kind: KindValue}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrUpstream         = &Error{Kind: KindUpstream}
)

func NewValueError(message string, cause error) *Error {
	return &Error{Kind: KindValue, Message: message, Err: cause}
}

func NewPermissionDeniedError(message string, cause error) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message, Err: cause}
}

func NewNotFoundError(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: cause}
}

func NewUpstreamError(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: cause}
}

// KindOf returns the kind carried by err, or zero if err is not an [*Error].
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

const (
	msgMissingCredential = "name or password is missing"
	msgWrongCredential   = "your name or password is wrong"
	msgMissingHeroID     = "hero id is missing"
)
