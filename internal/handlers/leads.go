package handlers

import (
	"net/http"

	"funnelpress/internal/models"
)

// createLeadRequest is the schema for POST /api/leads. Lead capture is the
// one open mutation on the API; it backs every signup form on the site.
type createLeadRequest struct {
	Name   string  `json:"name" validate:"required,max=200"`
	Email  string  `json:"email" validate:"required,email,max=320"`
	Phone  *string `json:"phone" validate:"omitempty,max=20"`
	Source string  `json:"source" validate:"max=100"`
}

// ListLeads handles GET /api/leads (auth).
func (a *API) ListLeads(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListLeads())
}

// CreateLead handles POST /api/leads.
func (a *API) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	created, err := a.store.CreateLead(models.Lead{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Source: req.Source,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}
