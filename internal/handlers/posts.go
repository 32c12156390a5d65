// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"funnelpress/internal/models"
	"funnelpress/internal/store"
	"funnelpress/internal/viewsim"
)

// createPostRequest is the schema for POST /api/posts.
type createPostRequest struct {
	Title          string   `json:"title" validate:"required,max=300"`
	Excerpt        string   `json:"excerpt" validate:"max=1000"`
	Content        string   `json:"content" validate:"required,max=100000"`
	ImageURL       *string  `json:"imageUrl" validate:"omitempty,max=1000"`
	Status         string   `json:"status" validate:"omitempty,oneof=published draft"`
	ShowInBlog     *bool    `json:"showInBlog"`
	ShowInNguoiMoi *bool    `json:"showInNguoiMoi"`
	ModuleID       *int     `json:"moduleId" validate:"omitempty,min=0"`
	ModuleName     *string  `json:"moduleName" validate:"omitempty,max=200"`
	LessonOrder    *int     `json:"lessonOrder" validate:"omitempty,min=0"`
	Duration       *string  `json:"duration" validate:"omitempty,max=100"`
	Objectives     []string `json:"objectives" validate:"omitempty,dive,max=500"`
	ActionSteps    []string `json:"actionSteps" validate:"omitempty,dive,max=500"`
}

// updatePostRequest is the schema for PUT /api/posts/{id}. All fields are
// optional; absent fields leave the post untouched.
type updatePostRequest struct {
	Title          *string  `json:"title" validate:"omitempty,min=1,max=300"`
	Excerpt        *string  `json:"excerpt" validate:"omitempty,max=1000"`
	Content        *string  `json:"content" validate:"omitempty,min=1,max=100000"`
	ImageURL       *string  `json:"imageUrl" validate:"omitempty,max=1000"`
	Status         *string  `json:"status" validate:"omitempty,oneof=published draft"`
	ShowInBlog     *bool    `json:"showInBlog"`
	ShowInNguoiMoi *bool    `json:"showInNguoiMoi"`
	ModuleID       *int     `json:"moduleId" validate:"omitempty,min=0"`
	ModuleName     *string  `json:"moduleName" validate:"omitempty,max=200"`
	LessonOrder    *int     `json:"lessonOrder" validate:"omitempty,min=0"`
	Duration       *string  `json:"duration" validate:"omitempty,max=100"`
	Objectives     []string `json:"objectives" validate:"omitempty,dive,max=500"`
	ActionSteps    []string `json:"actionSteps" validate:"omitempty,dive,max=500"`
}

// lessonFieldsValidation enforces the cross-field rule: a post shown in the
// mini-course must carry complete module metadata. Enforced here at the
// validation boundary, not in the store.
func lessonFieldsValidation(sl validator.StructLevel) {
	var showInNguoiMoi *bool
	var moduleID, lessonOrder *int
	var moduleName *string

	switch req := sl.Current().Interface().(type) {
	case createPostRequest:
		showInNguoiMoi = req.ShowInNguoiMoi
		moduleID, moduleName, lessonOrder = req.ModuleID, req.ModuleName, req.LessonOrder
	case updatePostRequest:
		showInNguoiMoi = req.ShowInNguoiMoi
		moduleID, moduleName, lessonOrder = req.ModuleID, req.ModuleName, req.LessonOrder
	default:
		return
	}

	if showInNguoiMoi == nil || !*showInNguoiMoi {
		return
	}
	if moduleID == nil {
		sl.ReportError(moduleID, "ModuleID", "ModuleID", "required_with_lesson", "")
	}
	if moduleName == nil || *moduleName == "" {
		sl.ReportError(moduleName, "ModuleName", "ModuleName", "required_with_lesson", "")
	}
	if lessonOrder == nil {
		sl.ReportError(lessonOrder, "LessonOrder", "LessonOrder", "required_with_lesson", "")
	}
}

// postResponse is a post payload enriched with the derived display metric.
// DisplayedViews is computed at read time and never persisted.
type postResponse struct {
	models.BlogPost
	DisplayedViews int `json:"displayedViews"`
}

func toPostResponse(p models.BlogPost, now time.Time) postResponse {
	return postResponse{
		BlogPost:       p,
		DisplayedViews: viewsim.DisplayedViews(&p, now),
	}
}

func toPostResponses(posts []models.BlogPost) []postResponse {
	now := time.Now()
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p, now))
	}
	return out
}

// ListPosts handles GET /api/posts. With ?type=nguoi-moi it filters to
// published mini-course lessons sorted by (moduleId, lessonOrder).
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []models.BlogPost
		err   error
	)
	if r.URL.Query().Get("type") == "nguoi-moi" {
		posts, err = a.store.ListLessonPosts()
	} else {
		posts, err = a.store.ListPosts()
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPostResponses(posts))
}

// GetPost handles GET /api/posts/{id}.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := a.store.GetPost(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if post == nil {
		respondNotFound(w, "post")
		return
	}
	respondJSON(w, http.StatusOK, toPostResponse(*post, time.Now()))
}

// GetPostBySlug handles GET /api/posts/slug/{slug}.
func (a *API) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := a.store.GetPostBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if post == nil {
		respondNotFound(w, "post")
		return
	}
	respondJSON(w, http.StatusOK, toPostResponse(*post, time.Now()))
}

// IncrementPostView handles POST /api/posts/{id}/view.
func (a *API) IncrementPostView(w http.ResponseWriter, r *http.Request) {
	views, found, err := a.store.IncrementPostViews(chi.URLParam(r, "id"))
	a.respondViewCount(w, views, found, err)
}

// IncrementPostViewBySlug handles POST /api/posts/slug/{slug}/view.
func (a *API) IncrementPostViewBySlug(w http.ResponseWriter, r *http.Request) {
	views, found, err := a.store.IncrementPostViewsBySlug(chi.URLParam(r, "slug"))
	a.respondViewCount(w, views, found, err)
}

func (a *API) respondViewCount(w http.ResponseWriter, views int, found bool, err error) {
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondNotFound(w, "post")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"views": views})
}

// CreatePost handles POST /api/posts (auth).
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	post := models.BlogPost{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Status:      models.PostStatus(req.Status),
		ModuleID:    req.ModuleID,
		ModuleName:  req.ModuleName,
		LessonOrder: req.LessonOrder,
		Duration:    req.Duration,
		Objectives:  req.Objectives,
		ActionSteps: req.ActionSteps,
	}
	if req.ShowInBlog != nil {
		post.ShowInBlog = *req.ShowInBlog
	}
	if req.ShowInNguoiMoi != nil {
		post.ShowInNguoiMoi = *req.ShowInNguoiMoi
	}

	created, err := a.store.CreatePost(post)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPostResponse(*created, time.Now()))
}

// UpdatePost handles PUT /api/posts/{id} (auth).
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	upd := store.PostUpdate{
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		ShowInBlog:     req.ShowInBlog,
		ShowInNguoiMoi: req.ShowInNguoiMoi,
		ModuleID:       req.ModuleID,
		ModuleName:     req.ModuleName,
		LessonOrder:    req.LessonOrder,
		Duration:       req.Duration,
		Objectives:     req.Objectives,
		ActionSteps:    req.ActionSteps,
	}
	if req.Status != nil {
		status := models.PostStatus(*req.Status)
		upd.Status = &status
	}

	updated, err := a.store.UpdatePost(chi.URLParam(r, "id"), upd)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "post")
		return
	}
	respondJSON(w, http.StatusOK, toPostResponse(*updated, time.Now()))
}

// DeletePost handles DELETE /api/posts/{id} (auth).
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.store.DeletePost(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondNotFound(w, "post")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
