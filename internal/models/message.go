package models

import "time"

// Message sender values.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is a single entry in the conversation history.
type Message struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// InsertMessage is the client-suppliable subset of Message. The
// timestamp is assigned by the store, never by the client.
type InsertMessage struct {
	Content string `json:"content" validate:"required"`
	Sender  string `json:"sender" validate:"required,oneof=user assistant"`
}
