// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// loginRequest is the schema for POST /api/auth/login.
type loginRequest struct {
	Password string `json:"password" validate:"required,max=200"`
}

// changePasswordRequest is the schema for POST /api/auth/change-password.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=200"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=200"`
}

// Login handles POST /api/auth/login. A successful credential check issues
// a session token, set as an HttpOnly cookie and returned in the body for
// Bearer-token clients.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	if !a.store.VerifyAdminPassword(req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := a.sessions.Create(r.Context(), w)
	if err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout handles POST /api/auth/logout.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ChangePassword handles POST /api/auth/change-password (auth). The current
// credential must verify before the new one is hashed and stored.
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	if !a.store.VerifyAdminPassword(req.CurrentPassword) {
		respondError(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	if err := a.store.SetAdminPassword(req.NewPassword); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
