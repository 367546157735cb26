package models

import "time"

// Reminder is a scheduled task the assistant tracks for the user.
// Description is a pointer so an omitted description serializes as null.
type Reminder struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Datetime    time.Time `json:"datetime"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertReminder is the client-suppliable subset of Reminder.
// Completed and CreatedAt are assigned by the store.
type InsertReminder struct {
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	Datetime    time.Time `json:"datetime" validate:"required"`
}

// ReminderPatch carries a partial update. Nil fields are left
// untouched by the merge; only the mutable fields can be patched.
type ReminderPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Datetime    *time.Time `json:"datetime"`
	Completed   *bool      `json:"completed"`
}
