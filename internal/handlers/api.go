// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API surface: public content reads,
// view tracking, lead capture, and the auth-gated admin CRUD. Payloads are
// validated at this boundary before any store method runs; store sentinels
// (nil, false) map to 404.
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"funnelpress/internal/session"
	"funnelpress/internal/store"
)

// maxBodyBytes caps request body size at the decode boundary.
const maxBodyBytes = 1 << 20

// API groups all HTTP handlers with their dependencies.
type API struct {
	store    *store.Store
	sessions *session.Store
	validate *validator.Validate
}

// New creates the API handler group.
func New(st *store.Store, sessions *session.Store) *API {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(lessonFieldsValidation, createPostRequest{})
	v.RegisterStructValidation(lessonFieldsValidation, updatePostRequest{})

	return &API{
		store:    st,
		sessions: sessions,
		validate: v,
	}
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondNotFound is the uniform 404 shape for absent ids and slugs.
func respondNotFound(w http.ResponseWriter, what string) {
	respondError(w, http.StatusNotFound, what+" not found")
}

// respondStoreError surfaces a persistence failure: the in-memory state is
// authoritative only once it is on disk, so the request fails.
func respondStoreError(w http.ResponseWriter, err error) {
	slog.Error("store operation failed", "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// decodeAndValidate decodes the request body into dst and runs schema
// validation. On failure it writes a 400 with structured field errors and
// returns false; store methods are never reached with an invalid payload.
func (a *API) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}

	if err := a.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": fieldErrors(verrs),
			})
			return false
		}
		respondError(w, http.StatusBadRequest, "validation failed")
		return false
	}
	return true
}

// fieldErrors flattens validator output into a field-to-message map.
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonFieldName(fe)] = validationMessage(fe)
	}
	return fields
}

// jsonFieldName lowercases the first rune of the struct field name, which
// matches the camelCase JSON tags used throughout the API.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with_lesson":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
