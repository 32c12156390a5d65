// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
)

// CourseUpdate carries a partial update for a course. Nil fields are left
// untouched.
type CourseUpdate struct {
	Title        *string
	Description  *string
	Price        *string
	ImageURL     *string
	CourseURL    *string
	Duration     *string
	StudentCount *int
	Rating       *string
	Badge        *string
	Status       *models.CourseStatus
}

// CreateCourse inserts a new course. StudentCount always starts at zero and
// the rating defaults to "5.0".
func (s *Store) CreateCourse(c models.Course) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.StudentCount = 0
	if c.Rating == "" {
		c.Rating = "5.0"
	}
	if c.Status == "" {
		c.Status = models.CourseStatusActive
	}

	s.courses[c.ID] = c
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &c, nil
}

// ListCourses returns the catalog in curated order: courses whose CourseURL
// appears in the pinned list rank first, in list order; everything else
// follows by creation date descending. This is deliberate manual curation,
// not a general sort.
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c)
	}

	sort.SliceStable(courses, func(i, j int) bool {
		ri, rj := s.pinnedRank(courses[i].CourseURL), s.pinnedRank(courses[j].CourseURL)
		if ri != rj {
			return ri < rj
		}
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})
	return courses
}

// pinnedRank returns the position of a course URL in the pinned list, or
// len(pinned) for unpinned courses so they sort after every pinned one.
func (s *Store) pinnedRank(courseURL *string) int {
	if courseURL == nil {
		return len(s.pinnedCourseURLs)
	}
	for i, u := range s.pinnedCourseURLs {
		if *courseURL == u {
			return i
		}
	}
	return len(s.pinnedCourseURLs)
}

// GetCourse returns a course by id, or nil if absent.
func (s *Store) GetCourse(id string) *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil
	}
	return &c
}

// UpdateCourse merges the given fields onto an existing course. Returns nil
// if the id does not exist.
func (s *Store) UpdateCourse(id string, upd CourseUpdate) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Price != nil {
		c.Price = *upd.Price
	}
	if upd.ImageURL != nil {
		c.ImageURL = *upd.ImageURL
	}
	if upd.CourseURL != nil {
		c.CourseURL = upd.CourseURL
	}
	if upd.Duration != nil {
		c.Duration = *upd.Duration
	}
	if upd.StudentCount != nil {
		c.StudentCount = *upd.StudentCount
	}
	if upd.Rating != nil {
		c.Rating = *upd.Rating
	}
	if upd.Badge != nil {
		c.Badge = upd.Badge
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}

	s.courses[id] = c
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return &c, nil
}

// DeleteCourse removes a course. Returns false if the id was not present.
func (s *Store) DeleteCourse(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return false, nil
	}
	delete(s.courses, id)
	if err := s.save(); err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}
	return true, nil
}
