// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// UpstreamStatus is the application-level error the remote catalog may embed
// in an HTTP 200 body, e.g. {"code":1000,"message":"Backend Error"}.
type UpstreamStatus struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed reports whether the body carried an error code.
func (s UpstreamStatus) Failed() bool {
	return s.Code != 0
}

// HeroResult is the raw payload of GET /heroes/{id}.
type HeroResult struct {
	Hero
	UpstreamStatus
}

// HeroProfileResult is the raw payload of GET /heroes/{id}/profile.
type HeroProfileResult struct {
	HeroProfile
	UpstreamStatus
}

// HeroListResult is the raw payload of GET /heroes. The catalog answers with
// a JSON array on success and with an object holding code and message when
// it fails at the application level.
type HeroListResult struct {
	Heroes []Hero
	UpstreamStatus
}

// UnmarshalJSON accepts both the array and the error object form.
func (r *HeroListResult) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var heroes []Hero
		if err := json.Unmarshal(trimmed, &heroes); err != nil {
			return err
		}
		r.Heroes = heroes
		r.UpstreamStatus = UpstreamStatus{}
		return nil
	}

	var status UpstreamStatus
	if err := json.Unmarshal(trimmed, &status); err != nil {
		return err
	}
	r.Heroes = nil
	r.UpstreamStatus = status
	return nil
}
