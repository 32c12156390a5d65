package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"funnelpress/internal/models"
	"funnelpress/internal/store"
)

// createTestimonialRequest is the schema for POST /api/testimonials.
type createTestimonialRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Title     string  `json:"title" validate:"required,max=200"`
	Company   *string `json:"company" validate:"omitempty,max=200"`
	Content   string  `json:"content" validate:"required,max=2000"`
	Rating    int     `json:"rating" validate:"omitempty,min=1,max=5"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,max=1000"`
	Featured  bool    `json:"featured"`
}

// updateTestimonialRequest is the schema for PUT /api/testimonials/{id}.
type updateTestimonialRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Title     *string `json:"title" validate:"omitempty,min=1,max=200"`
	Company   *string `json:"company" validate:"omitempty,max=200"`
	Content   *string `json:"content" validate:"omitempty,min=1,max=2000"`
	Rating    *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,max=1000"`
	Featured  *bool   `json:"featured"`
}

// ListTestimonials handles GET /api/testimonials.
func (a *API) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListTestimonials())
}

// CreateTestimonial handles POST /api/testimonials (auth).
func (a *API) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req createTestimonialRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	created, err := a.store.CreateTestimonial(models.Testimonial{
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		Content:   req.Content,
		Rating:    req.Rating,
		AvatarURL: req.AvatarURL,
		Featured:  req.Featured,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateTestimonial handles PUT /api/testimonials/{id} (auth).
func (a *API) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req updateTestimonialRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := a.store.UpdateTestimonial(chi.URLParam(r, "id"), store.TestimonialUpdate{
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		Content:   req.Content,
		Rating:    req.Rating,
		AvatarURL: req.AvatarURL,
		Featured:  req.Featured,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "testimonial")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTestimonial handles DELETE /api/testimonials/{id} (auth).
func (a *API) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.store.DeleteTestimonial(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondNotFound(w, "testimonial")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
