package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gian-ai/assistant-be/internal/chat"
	"github.com/gian-ai/assistant-be/internal/models"
	"github.com/gian-ai/assistant-be/internal/schema"
	"github.com/gian-ai/assistant-be/internal/storage"
	"github.com/rs/zerolog/log"
)

// MessageHandler handles the conversation history and the message
// exchange with the completion provider.
type MessageHandler struct {
	store     storage.Storage
	completer chat.Completer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(store storage.Storage, completer chat.Completer) *MessageHandler {
	return &MessageHandler{store: store, completer: completer}
}

// GetAll handles the request to get the conversation history, ordered
// by timestamp.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.GetMessages())
}

// ExchangeResponse pairs the persisted user message with the persisted
// assistant reply.
type ExchangeResponse struct {
	UserMessage models.Message `json:"userMessage"`
	AIMessage   models.Message `json:"aiMessage"`
}

// Create handles one conversational exchange: save the user message,
// ask the completion provider for a reply, save and return both sides.
// If the provider call fails the user message is intentionally left in
// place; the conversation shows what the user said even when no reply
// arrived.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.InsertMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Whatever the client claims, an inbound message is from the user.
	payload.Sender = models.SenderUser

	if err := schema.Validate(payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userMessage := h.store.CreateMessage(payload)

	reply, err := h.completer.Complete(r.Context(), payload.Content)
	if err != nil {
		log.Error().Err(err).Msg("Completion provider call failed")
		respondError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	aiMessage := h.store.CreateMessage(models.InsertMessage{
		Content: reply,
		Sender:  models.SenderAssistant,
	})

	respondJSON(w, http.StatusOK, ExchangeResponse{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
	})
}

// Clear handles the request to wipe the conversation history.
func (h *MessageHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearMessages()
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
