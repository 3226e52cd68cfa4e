// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hero-gateway/internal/logger"
	"github.com/MKhiriev/go-hero-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listHeroes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, _ := utils.GetIdentityFromContext(ctx)

	heroes, err := h.services.HeroService.ListHeroes(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, heroes, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing heroes response")
	}
}

func (h *Handler) getHero(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, _ := utils.GetIdentityFromContext(ctx)
	heroID := chi.URLParam(r, "heroId")

	hero, err := h.services.HeroService.GetHero(ctx, identity, heroID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, hero, http.StatusOK); err != nil {
		log.Err(err).Str("hero_id", heroID).Msg("error writing hero response")
	}
}
