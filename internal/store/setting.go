// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"

	"funnelpress/internal/models"
)

// ListSettings returns every setting ordered by key.
func (s *Store) ListSettings() []models.Setting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Setting, 0, len(s.settings))
	for _, v := range s.settings {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

// GetSetting returns a setting by key, or nil if absent.
func (s *Store) GetSetting(key string) *models.Setting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.settings[key]
	if !ok {
		return nil
	}
	return &v
}

// UpsertSetting overwrites the value for key, creating the setting if it
// doesn't exist. Settings are the only entity with true upsert semantics.
func (s *Store) UpsertSetting(key, value string) (*models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertSettingLocked(key, value)
}

func (s *Store) upsertSettingLocked(key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	s.settings[key] = setting
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return &setting, nil
}

// VerifyAdminPassword checks a candidate credential against the stored
// override, falling back to the env-configured default when no override is
// set. Both sides compare as bcrypt hashes; the plaintext is never at rest.
func (s *Store) VerifyAdminPassword(candidate string) bool {
	s.mu.RLock()
	hash := s.defaultAdminHash
	if v, ok := s.settings[adminPasswordKey]; ok && v.Value != "" {
		hash = v.Value
	}
	s.mu.RUnlock()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// SetAdminPassword hashes and upserts the admin password override.
func (s *Store) SetAdminPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.upsertSettingLocked(adminPasswordKey, string(hash)); err != nil {
		return fmt.Errorf("set admin password: %w", err)
	}
	return nil
}
