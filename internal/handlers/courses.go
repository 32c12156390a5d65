// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"funnelpress/internal/models"
	"funnelpress/internal/store"
)

// createCourseRequest is the schema for POST /api/courses. StudentCount is
// deliberately absent; it always starts at zero.
type createCourseRequest struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Description string  `json:"description" validate:"required,max=5000"`
	Price       string  `json:"price" validate:"required,max=20"`
	ImageURL    string  `json:"imageUrl" validate:"required,max=1000"`
	CourseURL   *string `json:"courseUrl" validate:"omitempty,max=200,startswith=/"`
	Duration    string  `json:"duration" validate:"max=100"`
	Rating      string  `json:"rating" validate:"omitempty,max=10"`
	Badge       *string `json:"badge" validate:"omitempty,max=100"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// updateCourseRequest is the schema for PUT /api/courses/{id}.
type updateCourseRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=300"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	Price        *string `json:"price" validate:"omitempty,max=20"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,max=1000"`
	CourseURL    *string `json:"courseUrl" validate:"omitempty,max=200,startswith=/"`
	Duration     *string `json:"duration" validate:"omitempty,max=100"`
	StudentCount *int    `json:"studentCount" validate:"omitempty,min=0"`
	Rating       *string `json:"rating" validate:"omitempty,max=10"`
	Badge        *string `json:"badge" validate:"omitempty,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ListCourses handles GET /api/courses.
func (a *API) ListCourses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListCourses())
}

// GetCourse handles GET /api/courses/{id}.
func (a *API) GetCourse(w http.ResponseWriter, r *http.Request) {
	course := a.store.GetCourse(chi.URLParam(r, "id"))
	if course == nil {
		respondNotFound(w, "course")
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// CreateCourse handles POST /api/courses (auth).
func (a *API) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	created, err := a.store.CreateCourse(models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CourseURL:   req.CourseURL,
		Duration:    req.Duration,
		Rating:      req.Rating,
		Badge:       req.Badge,
		Status:      models.CourseStatus(req.Status),
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateCourse handles PUT /api/courses/{id} (auth).
func (a *API) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req updateCourseRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	upd := store.CourseUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		CourseURL:    req.CourseURL,
		Duration:     req.Duration,
		StudentCount: req.StudentCount,
		Rating:       req.Rating,
		Badge:        req.Badge,
	}
	if req.Status != nil {
		status := models.CourseStatus(*req.Status)
		upd.Status = &status
	}

	updated, err := a.store.UpdateCourse(chi.URLParam(r, "id"), upd)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "course")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteCourse handles DELETE /api/courses/{id} (auth).
func (a *API) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.store.DeleteCourse(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondNotFound(w, "course")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
