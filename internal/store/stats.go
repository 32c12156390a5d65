package store

import "strings"

// SiteStats aggregates the admin dashboard counters.
type SiteStats struct {
	TotalPosts    int            `json:"totalPosts"`
	TotalCourses  int            `json:"totalCourses"`
	TotalStudents int            `json:"totalStudents"`
	TotalLeads    int            `json:"totalLeads"`
	LandingViews  map[string]int `json:"landingViews"`
}

// Stats computes totals across collections. Landing views are keyed by slug
// without the leading slash.
func (s *Store) Stats() SiteStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := SiteStats{
		TotalPosts:   len(s.posts),
		TotalCourses: len(s.courses),
		TotalLeads:   len(s.leads),
		LandingViews: make(map[string]int, len(s.landingViews)),
	}
	for _, c := range s.courses {
		stats.TotalStudents += c.StudentCount
	}
	for _, v := range s.landingViews {
		stats.LandingViews[strings.TrimPrefix(v.Slug, "/")] = v.Views
	}
	return stats
}
