// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the single in-process authority for all entity
// collections. Every public operation reads from or mutates the in-memory
// maps under an RWMutex, and every mutation writes through to the
// persistence gateway before returning. Not-found conditions surface as nil
// or false sentinels, never as errors.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"funnelpress/internal/models"
	"funnelpress/internal/persist"
	"funnelpress/internal/slug"
	"funnelpress/internal/viewsim"
)

// adminPasswordKey is the settings key holding the bcrypt hash of the
// overridden admin password.
const adminPasswordKey = "admin_password_hash"

// Options configures store construction.
type Options struct {
	// PinnedCourseURLs fixes the rank of the official courses in catalog
	// listings, in order. Courses not in the list sort by creation date
	// descending after the pinned ones.
	PinnedCourseURLs []string

	// DefaultAdminPassword is the env-configured credential used until an
	// override is stored in settings. It is bcrypt-hashed at construction
	// and never kept in plaintext.
	DefaultAdminPassword string
}

// Store owns all entity maps for the process lifetime.
type Store struct {
	mu      sync.RWMutex
	gateway *persist.Gateway

	pinnedCourseURLs []string
	defaultAdminHash string

	users        map[string]models.User
	posts        map[string]models.BlogPost
	courses      map[string]models.Course
	testimonials map[string]models.Testimonial
	leads        map[string]models.Lead
	settings     map[string]models.Setting
	landingViews map[string]models.LandingPageView
}

// Open loads the store from the gateway, seeding default data on first boot
// or when the persisted file is unreadable. Posts from legacy files that
// lack a slug get one backfilled with the uniqueness-suffix algorithm.
// Initialization happens exactly once, before the store is handed to the
// HTTP layer.
func Open(gateway *persist.Gateway, opts Options) (*Store, error) {
	defaultHash, err := bcrypt.GenerateFromPassword([]byte(opts.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash default admin password: %w", err)
	}

	s := &Store{
		gateway:          gateway,
		pinnedCourseURLs: opts.PinnedCourseURLs,
		defaultAdminHash: string(defaultHash),
	}

	snap, err := gateway.Load()
	if err != nil {
		slog.Error("data file unreadable, falling back to seed data", "error", err, "path", gateway.Path())
		snap = nil
	}

	if snap == nil {
		s.apply(seedSnapshot())
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("persist seed data: %w", err)
		}
		slog.Info("store seeded with default data", "path", gateway.Path())
		return s, nil
	}

	s.apply(snap)

	if n := s.backfillSlugs(); n > 0 {
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("persist slug backfill: %w", err)
		}
		slog.Info("backfilled missing post slugs", "count", n)
	}

	slog.Info("store loaded",
		"posts", len(s.posts),
		"courses", len(s.courses),
		"leads", len(s.leads),
		"path", gateway.Path(),
	)
	return s, nil
}

// apply replaces all collections from a snapshot.
func (s *Store) apply(snap *persist.Snapshot) {
	s.users = snap.Users
	s.posts = snap.BlogPosts
	s.courses = snap.Courses
	s.testimonials = snap.Testimonials
	s.leads = snap.Leads
	s.settings = snap.Settings
	s.landingViews = snap.LandingPageViews
}

// snapshot builds the persistence view of the current state.
// Caller must hold at least a read lock.
func (s *Store) snapshot() *persist.Snapshot {
	return &persist.Snapshot{
		Users:            s.users,
		BlogPosts:        s.posts,
		Courses:          s.courses,
		Testimonials:     s.testimonials,
		Leads:            s.leads,
		Settings:         s.settings,
		LandingPageViews: s.landingViews,
	}
}

// save writes the current state through the gateway. Caller must hold the
// write lock; mutations are never visible to callers before they are on disk.
func (s *Store) save() error {
	return s.gateway.Save(s.snapshot())
}

// backfillSlugs assigns slugs to legacy posts that have none.
// Returns the number of posts changed. Caller need not hold the lock;
// this runs only during Open, before the store is shared.
func (s *Store) backfillSlugs() int {
	changed := 0
	for id, p := range s.posts {
		if strings.TrimSpace(p.Slug) != "" {
			continue
		}
		p.Slug = s.uniqueSlug(p.Title, id)
		s.posts[id] = p
		changed++
	}
	return changed
}

// uniqueSlug generates a slug for title that collides with no other post,
// excluding excludeID from the scan. Collisions resolve by numeric
// suffixing: slug, slug-1, slug-2, … An empty base (all-symbol title) is a
// valid degenerate slug and goes through the same suffixing.
// Caller must hold at least a read lock (or run before the store is shared).
func (s *Store) uniqueSlug(title, excludeID string) string {
	base := slug.Generate(title)
	candidate := base
	for n := 1; s.slugTaken(candidate, excludeID); n++ {
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return candidate
}

func (s *Store) slugTaken(candidate, excludeID string) bool {
	for id, p := range s.posts {
		if id != excludeID && p.Slug == candidate {
			return true
		}
	}
	return false
}

// applyDailyViews applies the deterministic daily increment to a post.
// Idempotent per calendar day: once the post is stamped with today's date,
// further calls are no-ops. Returns true if the post changed.
func applyDailyViews(p *models.BlogPost, today string) bool {
	if p.LastDailyIncrement == today {
		return false
	}
	p.Views += viewsim.DailyIncrement(p.ID, today)
	p.LastDailyIncrement = today
	return true
}

// sortedByCreatedDesc is a shared comparator helper for list operations.
func sortedByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
