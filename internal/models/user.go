package models

// User represents a user account. No route exposes users yet; the
// collection exists for a future login flow.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Never expose this to the client
}

// InsertUser is the client-suppliable subset of User.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
