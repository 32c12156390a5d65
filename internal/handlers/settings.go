package handlers

import (
	"net/http"
)

// upsertSettingRequest is the schema for POST /api/settings.
type upsertSettingRequest struct {
	Key   string `json:"key" validate:"required,max=200"`
	Value string `json:"value" validate:"max=10000"`
}

// ListSettings handles GET /api/settings (auth).
func (a *API) ListSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListSettings())
}

// UpsertSetting handles POST /api/settings (auth). Settings are the only
// entity with true upsert semantics.
func (a *API) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req upsertSettingRequest
	if !a.decodeAndValidate(w, r, &req) {
		return
	}

	setting, err := a.store.UpsertSetting(req.Key, req.Value)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, setting)
}

// GetStats handles GET /api/stats (auth).
func (a *API) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.Stats())
}
