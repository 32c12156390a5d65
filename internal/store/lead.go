package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
)

// CreateLead appends a new lead. Leads are append-only; there is no update
// or delete operation.
func (s *Store) CreateLead(l models.Lead) (*models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = uuid.NewString()
	l.CreatedAt = time.Now()

	s.leads[l.ID] = l
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return &l, nil
}

// ListLeads returns all captured leads, newest first.
func (s *Store) ListLeads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		items = append(items, l)
	}
	sortedByCreatedDesc(items, func(l models.Lead) time.Time { return l.CreatedAt })
	return items
}
