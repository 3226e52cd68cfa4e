// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Code repeats the HTTP status of the response.
	Code int `json:"code"`

	// Message is a human readable description. Internal failures always
	// carry a generic message so upstream details do not leak to callers.
	Message string `json:"message"`
}
