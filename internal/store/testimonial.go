package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
)

// TestimonialUpdate carries a partial update for a testimonial.
type TestimonialUpdate struct {
	Name      *string
	Title     *string
	Company   *string
	Content   *string
	Rating    *int
	AvatarURL *string
	Featured  *bool
}

// CreateTestimonial inserts a new testimonial. Rating defaults to 5.
func (s *Store) CreateTestimonial(t models.Testimonial) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	if t.Rating == 0 {
		t.Rating = 5
	}

	s.testimonials[t.ID] = t
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return &t, nil
}

// ListTestimonials returns all testimonials, newest first.
func (s *Store) ListTestimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		items = append(items, t)
	}
	sortedByCreatedDesc(items, func(t models.Testimonial) time.Time { return t.CreatedAt })
	return items
}

// GetTestimonial returns a testimonial by id, or nil if absent.
func (s *Store) GetTestimonial(id string) *models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.testimonials[id]
	if !ok {
		return nil
	}
	return &t
}

// UpdateTestimonial merges the given fields onto an existing testimonial.
// Returns nil if the id does not exist.
func (s *Store) UpdateTestimonial(id string, upd TestimonialUpdate) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.testimonials[id]
	if !ok {
		return nil, nil
	}

	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Company != nil {
		t.Company = upd.Company
	}
	if upd.Content != nil {
		t.Content = *upd.Content
	}
	if upd.Rating != nil {
		t.Rating = *upd.Rating
	}
	if upd.AvatarURL != nil {
		t.AvatarURL = upd.AvatarURL
	}
	if upd.Featured != nil {
		t.Featured = *upd.Featured
	}

	s.testimonials[id] = t
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return &t, nil
}

// DeleteTestimonial removes a testimonial. Returns false if absent.
func (s *Store) DeleteTestimonial(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testimonials[id]; !ok {
		return false, nil
	}
	delete(s.testimonials, id)
	if err := s.save(); err != nil {
		return false, fmt.Errorf("delete testimonial: %w", err)
	}
	return true, nil
}
