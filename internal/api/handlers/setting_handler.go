package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gian-ai/assistant-be/internal/models"
	"github.com/gian-ai/assistant-be/internal/schema"
	"github.com/gian-ai/assistant-be/internal/storage"
	"github.com/go-chi/chi/v5"
)

// SettingHandler handles HTTP requests related to settings.
type SettingHandler struct {
	store storage.Storage
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(store storage.Storage) *SettingHandler {
	return &SettingHandler{store: store}
}

// GetAll handles the request to get all settings.
func (h *SettingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.GetSettings())
}

// Put upserts the setting named by the URL key. A rejected write leaves
// the settings collection untouched.
func (h *SettingHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var payload models.InsertSetting
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := schema.Validate(payload); err != nil {
		respondError(w, http.StatusBadRequest, "Value is required")
		return
	}

	respondJSON(w, http.StatusOK, h.store.SetSetting(key, payload.Value))
}
