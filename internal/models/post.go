// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PostStatus represents the publishing state of a blog post.
type PostStatus string

const (
	PostStatusPublished PostStatus = "published"
	PostStatusDraft     PostStatus = "draft"
)

// BlogPost represents a blog article. Posts flagged with ShowInNguoiMoi also
// act as lessons in the free "người mới" mini-course and carry module
// metadata (ModuleID, ModuleName, LessonOrder).
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"`
	Status      PostStatus `json:"status"`

	// Views counts real page hits plus the deterministic daily increment.
	// LastDailyIncrement is the calendar date (YYYY-MM-DD) the increment was
	// last applied; empty means never.
	Views              int    `json:"views"`
	LastDailyIncrement string `json:"lastDailyIncrement,omitempty"`

	ShowInBlog     bool `json:"showInBlog"`
	ShowInNguoiMoi bool `json:"showInNguoiMoi"`

	// Lesson metadata, only meaningful when ShowInNguoiMoi is true.
	ModuleID    *int     `json:"moduleId,omitempty"`
	ModuleName  *string  `json:"moduleName,omitempty"`
	LessonOrder *int     `json:"lessonOrder,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Objectives  []string `json:"objectives,omitempty"`
	ActionSteps []string `json:"actionSteps,omitempty"`
}

// IsPublished returns true if the post is in published status.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsLesson returns true if the post is a published mini-course lesson with
// complete module metadata.
func (p *BlogPost) IsLesson() bool {
	return p.ShowInNguoiMoi && p.IsPublished() &&
		p.ModuleID != nil && p.ModuleName != nil && *p.ModuleName != "" &&
		p.LessonOrder != nil
}
