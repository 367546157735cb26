package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gian-ai/assistant-be/internal/mailer"
	"github.com/gian-ai/assistant-be/internal/schema"
	"github.com/rs/zerolog/log"
)

// EmailHandler relays mail on the user's behalf. It has no interaction
// with the entity store.
type EmailHandler struct {
	mailer mailer.Mailer
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(m mailer.Mailer) *EmailHandler {
	return &EmailHandler{mailer: m}
}

// SendEmailPayload defines the structure for send-email requests.
type SendEmailPayload struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Send handles the request to relay an email.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload SendEmailPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := schema.Validate(payload); err != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields: to, subject, content")
		return
	}

	if err := h.mailer.Send(r.Context(), payload.To, payload.Subject, payload.Content); err != nil {
		log.Error().Err(err).Str("to", payload.To).Msg("Failed to send email")
		respondError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email sent successfully",
	})
}
