// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// CourseStatus represents whether a course is open for enrollment.
type CourseStatus string

const (
	CourseStatusActive   CourseStatus = "active"
	CourseStatusInactive CourseStatus = "inactive"
)

// Course represents a paid course in the catalog. Price and Rating are
// decimal strings so the stored representation never loses precision.
type Course struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        string       `json:"price"`
	ImageURL     string       `json:"imageUrl"`
	CourseURL    *string      `json:"courseUrl,omitempty"`
	Duration     string       `json:"duration"`
	StudentCount int          `json:"studentCount"`
	Rating       string       `json:"rating"`
	Badge        *string      `json:"badge,omitempty"`
	Status       CourseStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// IsActive returns true if the course is open for enrollment.
func (c *Course) IsActive() bool {
	return c.Status == CourseStatusActive
}
