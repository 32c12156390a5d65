// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
)

// landingSlugPattern validates landing page slugs at the HTTP boundary
// before the store is reached. Slugs always begin with "/".
var landingSlugPattern = regexp.MustCompile(`^/[a-zA-Z0-9\-_]+$`)

// ListLandingViews handles GET /api/landing-views.
func (a *API) ListLandingViews(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListLandingViews())
}

// IncrementLandingView handles POST /api/landing-views/{slug}/view. The
// target record is auto-created with views=1 on the first hit for an
// unseen slug.
func (a *API) IncrementLandingView(w http.ResponseWriter, r *http.Request) {
	slug := "/" + chi.URLParam(r, "slug")
	if !landingSlugPattern.MatchString(slug) {
		respondError(w, http.StatusBadRequest, "invalid landing page slug")
		return
	}

	views, err := a.store.IncrementLandingViewBySlug(slug)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"views": views})
}

// ResetLandingViews handles DELETE /api/landing-views/reset (auth). The
// official pages come back at views=0; any other tracked slug is dropped.
func (a *API) ResetLandingViews(w http.ResponseWriter, r *http.Request) {
	if err := a.store.ResetLandingViews(); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
