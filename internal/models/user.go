// Package models defines the data structures persisted by the content store
// and provides the core types used throughout the application.
package models

import "time"

// User represents an account owned by the auth subsystem. The content store
// only provides lookup and creation primitives for it.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Image         *string   `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
