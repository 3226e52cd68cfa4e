// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Hero is a single hero record as served by the remote catalog.
//
// ID, Name and Image are passed through untouched. Profile is set only for
// authenticated callers and only after enrichment succeeded for every hero
// of the response, so anonymous responses never carry the "profile" key.
type Hero struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`

	Profile *HeroProfile `json:"profile,omitempty"`
}

// HeroProfile holds hero attributes returned by GET /heroes/{id}/profile.
type HeroProfile struct {
	Str int `json:"str"`
	Int int `json:"int"`
	Agi int `json:"agi"`
	Luk int `json:"luk"`
}

// WithProfile returns a copy of h carrying profile.
func (h Hero) WithProfile(profile HeroProfile) Hero {
	h.Profile = &profile
	return h
}

// WithoutProfile returns a copy of h with the profile removed.
func (h Hero) WithoutProfile() Hero {
	h.Profile = nil
	return h
}
