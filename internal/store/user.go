package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
)

// GetUser returns a user by id, or nil if absent. Users are owned by the
// auth subsystem; the store only provides these primitives.
func (s *Store) GetUser(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

// GetUserByEmail returns a user by email, or nil if absent. Emails are
// unique across users.
func (s *Store) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u
		}
	}
	return nil
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(u models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[u.ID] = u
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}
