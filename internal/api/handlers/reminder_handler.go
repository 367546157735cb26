package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gian-ai/assistant-be/internal/models"
	"github.com/gian-ai/assistant-be/internal/schema"
	"github.com/gian-ai/assistant-be/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ReminderHandler handles HTTP requests related to reminders.
type ReminderHandler struct {
	store storage.Storage
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(store storage.Storage) *ReminderHandler {
	return &ReminderHandler{store: store}
}

// GetAll handles the request to get all reminders, ordered by their
// scheduled datetime.
func (h *ReminderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.GetReminders())
}

// Create handles the request to create a new reminder.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertReminder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := schema.Validate(payload); err != nil {
		log.Warn().Err(err).Msg("Rejected reminder creation")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.store.CreateReminder(payload))
}

// Update handles a partial update of an existing reminder. The body is
// an unchecked partial; absent fields keep their stored values.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reminder id")
		return
	}

	var patch models.ReminderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, ok := h.store.UpdateReminder(id, patch)
	if !ok {
		respondError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete handles the request to delete a reminder.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid reminder id")
		return
	}

	if !h.store.DeleteReminder(id) {
		respondError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
