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
	"funnelpress/internal/viewsim"
)

// PostUpdate carries a partial update for a blog post. Nil fields are left
// untouched; a changed title regenerates the slug.
type PostUpdate struct {
	Title          *string
	Excerpt        *string
	Content        *string
	ImageURL       *string
	Status         *models.PostStatus
	ShowInBlog     *bool
	ShowInNguoiMoi *bool
	ModuleID       *int
	ModuleName     *string
	LessonOrder    *int
	Duration       *string
	Objectives     []string
	ActionSteps    []string
}

// CreatePost inserts a new post. The slug derives from the title with
// uniqueness suffixing; views start at zero and PublishedAt is stamped at
// creation and never changes.
func (s *Store) CreatePost(p models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.Slug = s.uniqueSlug(p.Title, p.ID)
	p.PublishedAt = time.Now()
	p.Views = 0
	p.LastDailyIncrement = ""
	if p.Status == "" {
		p.Status = models.PostStatusPublished
	}

	s.posts[p.ID] = p
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

// ListPosts returns all posts ordered by publish date descending. Listing
// triggers the lazy daily-increment pass: the first read after a date
// rollover applies today's increment to every post, after which reads stay
// stable for the rest of the day.
func (s *Store) ListPosts() ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.runDailyIncrements(); err != nil {
		return nil, err
	}

	posts := make([]models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sortedByCreatedDesc(posts, func(p models.BlogPost) time.Time { return p.PublishedAt })
	return posts, nil
}

// ListLessonPosts returns published mini-course lessons with complete
// module metadata, sorted by (moduleId, lessonOrder) ascending.
func (s *Store) ListLessonPosts() ([]models.BlogPost, error) {
	posts, err := s.ListPosts()
	if err != nil {
		return nil, err
	}

	lessons := posts[:0]
	for _, p := range posts {
		if p.IsLesson() {
			lessons = append(lessons, p)
		}
	}
	sortLessons(lessons)
	return lessons, nil
}

// GetPost returns a post by id, or nil if absent. Fetching applies today's
// daily increment to the post first.
func (s *Store) GetPost(id string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	if applyDailyViews(&p, viewsim.DateKey(time.Now())) {
		s.posts[id] = p
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("get post: %w", err)
		}
	}
	return &p, nil
}

// GetPostBySlug returns a post by slug, or nil if absent.
func (s *Store) GetPostBySlug(slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	id, ok := s.postIDBySlug(slug)
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return s.GetPost(id)
}

// UpdatePost merges the given fields onto an existing post. Returns nil if
// the id does not exist. A changed title regenerates the slug, excluding
// the post itself from the collision scan.
func (s *Store) UpdatePost(id string, upd PostUpdate) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}

	if upd.Title != nil && *upd.Title != p.Title {
		p.Title = *upd.Title
		p.Slug = s.uniqueSlug(p.Title, id)
	}
	if upd.Excerpt != nil {
		p.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.ImageURL != nil {
		p.ImageURL = upd.ImageURL
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.ShowInBlog != nil {
		p.ShowInBlog = *upd.ShowInBlog
	}
	if upd.ShowInNguoiMoi != nil {
		p.ShowInNguoiMoi = *upd.ShowInNguoiMoi
	}
	if upd.ModuleID != nil {
		p.ModuleID = upd.ModuleID
	}
	if upd.ModuleName != nil {
		p.ModuleName = upd.ModuleName
	}
	if upd.LessonOrder != nil {
		p.LessonOrder = upd.LessonOrder
	}
	if upd.Duration != nil {
		p.Duration = upd.Duration
	}
	if upd.Objectives != nil {
		p.Objectives = upd.Objectives
	}
	if upd.ActionSteps != nil {
		p.ActionSteps = upd.ActionSteps
	}

	s.posts[id] = p
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &p, nil
}

// DeletePost removes a post. Returns false if the id was not present;
// nothing is persisted in that case.
func (s *Store) DeletePost(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false, nil
	}
	delete(s.posts, id)
	if err := s.save(); err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return true, nil
}

// IncrementPostViews adds one real view to a post by id and returns the new
// count. Returns (0, false, nil) if the post does not exist.
func (s *Store) IncrementPostViews(id string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incrementPostLocked(id)
}

// IncrementPostViewsBySlug adds one real view to a post by slug.
func (s *Store) IncrementPostViewsBySlug(slug string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.postIDBySlug(slug)
	if !ok {
		return 0, false, nil
	}
	return s.incrementPostLocked(id)
}

func (s *Store) incrementPostLocked(id string) (int, bool, error) {
	p, ok := s.posts[id]
	if !ok {
		return 0, false, nil
	}
	p.Views++
	s.posts[id] = p
	if err := s.save(); err != nil {
		return 0, false, fmt.Errorf("increment post views: %w", err)
	}
	return p.Views, true, nil
}

// postIDBySlug scans for a post by slug. Caller must hold a lock.
func (s *Store) postIDBySlug(slug string) (string, bool) {
	for id, p := range s.posts {
		if p.Slug == slug {
			return id, true
		}
	}
	return "", false
}

// runDailyIncrements applies today's increment to every post that hasn't
// received it yet, persisting once if anything changed. Caller must hold
// the write lock.
func (s *Store) runDailyIncrements() error {
	today := viewsim.DateKey(time.Now())
	changed := false
	for id, p := range s.posts {
		if applyDailyViews(&p, today) {
			s.posts[id] = p
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.save(); err != nil {
		return fmt.Errorf("daily view increments: %w", err)
	}
	return nil
}

// sortLessons orders lessons by module, then lesson order within the module.
func sortLessons(lessons []models.BlogPost) {
	sort.SliceStable(lessons, func(i, j int) bool {
		if *lessons[i].ModuleID != *lessons[j].ModuleID {
			return *lessons[i].ModuleID < *lessons[j].ModuleID
		}
		return *lessons[i].LessonOrder < *lessons[j].LessonOrder
	})
}
