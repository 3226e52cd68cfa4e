// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(string(resp.Body()))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode())
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode(), Reason: reason}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		respErr.Err = ErrUnauthorized
	case http.StatusNotFound:
		respErr.Err = ErrNotFound
	default:
		respErr.Err = ErrUnexpectedStatus
	}

	return respErr
}
