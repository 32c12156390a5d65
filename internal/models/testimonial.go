package models

import "time"

// Testimonial represents a customer quote shown on landing pages.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   *string   `json:"company,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}
