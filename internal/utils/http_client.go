// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes all resty methods while
// leaving room for application-specific helpers.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("https://hahow-recruit.herokuapp.com")
//	resp, err := client.R().Get("/heroes")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with its own resty.Client, hence its
// own configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
