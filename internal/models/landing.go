package models

import "time"

// LandingPageView tracks real view counts for a landing page. Counts here
// are one per HTTP hit; landing pages feed ad-spend decisions, so no
// synthetic inflation is ever applied to them (contrast with blog posts).
type LandingPageView struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"` // always begins with "/"
	Title string `json:"title"`
	Views int    `json:"views"`

	// LastDailyIncrement is kept for data-file compatibility. No code path
	// writes it; the daily-increment simulation is disabled for landing pages.
	LastDailyIncrement string    `json:"lastDailyIncrement,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
