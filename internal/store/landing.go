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

// ListLandingViews returns every tracked landing page ordered by slug.
func (s *Store) ListLandingViews() []models.LandingPageView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.LandingPageView, 0, len(s.landingViews))
	for _, v := range s.landingViews {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Slug < items[j].Slug })
	return items
}

// IncrementLandingViewBySlug adds one real view to a landing page,
// auto-creating the record with views=1 on the first hit for an unseen
// slug. Landing counts are never synthetically inflated because they feed
// ad-spend decisions.
func (s *Store) IncrementLandingViewBySlug(slug string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, v := range s.landingViews {
		if v.Slug == slug {
			v.Views++
			s.landingViews[id] = v
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("increment landing view: %w", err)
			}
			return v.Views, nil
		}
	}

	created := models.LandingPageView{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     slug,
		Views:     1,
		CreatedAt: time.Now(),
	}
	s.landingViews[created.ID] = created
	if err := s.save(); err != nil {
		return 0, fmt.Errorf("create landing view: %w", err)
	}
	return created.Views, nil
}

// ResetLandingViews rebuilds the landing map with exactly the official
// pages at views=0 and lastDailyIncrement unset. Any other tracked slug
// is dropped.
func (s *Store) ResetLandingViews() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.landingViews = make(map[string]models.LandingPageView, len(officialLandingPages))
	now := time.Now()
	for _, page := range officialLandingPages {
		v := models.LandingPageView{
			ID:        uuid.NewString(),
			Slug:      page.Slug,
			Title:     page.Title,
			Views:     0,
			CreatedAt: now,
		}
		s.landingViews[v.ID] = v
	}

	if err := s.save(); err != nil {
		return fmt.Errorf("reset landing views: %w", err)
	}
	return nil
}
