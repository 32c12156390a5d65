// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package persist serializes the content store to a single JSON document and
// rehydrates it on boot. Each collection is stored as an array of
// [id, record] pairs; date fields round-trip as ISO-8601 strings. Writes go
// to a temp file first and are renamed over the real path, so a concurrent
// reader of the real path never observes a half-written file.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"

	"funnelpress/internal/models"
)

// Snapshot holds every store collection for one save or load operation.
// The gateway never caches entity state between operations.
type Snapshot struct {
	Users            map[string]models.User
	BlogPosts        map[string]models.BlogPost
	Courses          map[string]models.Course
	Testimonials     map[string]models.Testimonial
	Leads            map[string]models.Lead
	Settings         map[string]models.Setting
	LandingPageViews map[string]models.LandingPageView
}

// NewSnapshot returns a Snapshot with all collections allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:            make(map[string]models.User),
		BlogPosts:        make(map[string]models.BlogPost),
		Courses:          make(map[string]models.Course),
		Testimonials:     make(map[string]models.Testimonial),
		Leads:            make(map[string]models.Lead),
		Settings:         make(map[string]models.Setting),
		LandingPageViews: make(map[string]models.LandingPageView),
	}
}

// pairList is a collection in its on-disk form: an array of [id, record]
// pairs, each element raw JSON.
type pairList [][2]json.RawMessage

// document mirrors the top-level layout of the data file. Collections
// absent from an older file simply stay nil and load as empty maps.
type document struct {
	Users            pairList `json:"users"`
	BlogPosts        pairList `json:"blogPosts"`
	Courses          pairList `json:"courses"`
	Testimonials     pairList `json:"testimonials"`
	Leads            pairList `json:"leads"`
	Settings         pairList `json:"settings"`
	LandingPageViews pairList `json:"landingPageViews"`
}

// Gateway reads and writes the single JSON data file.
type Gateway struct {
	path string
}

// New returns a Gateway for the given data file path.
func New(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the data file path.
func (g *Gateway) Path() string {
	return g.path
}

// Exists reports whether the data file is present on disk.
func (g *Gateway) Exists() bool {
	_, err := os.Stat(g.path)
	return err == nil
}

// Load reads and decodes the data file. Returns (nil, nil) if the file does
// not exist yet.
func (g *Gateway) Load() (*Snapshot, error) {
	data, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}

	snap := &Snapshot{}
	if snap.Users, err = toMap[models.User](doc.Users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if snap.BlogPosts, err = toMap[models.BlogPost](doc.BlogPosts); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}
	if snap.Courses, err = toMap[models.Course](doc.Courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	if snap.Testimonials, err = toMap[models.Testimonial](doc.Testimonials); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	if snap.Leads, err = toMap[models.Lead](doc.Leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	if snap.Settings, err = toMap[models.Setting](doc.Settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if snap.LandingPageViews, err = toMap[models.LandingPageView](doc.LandingPageViews); err != nil {
		return nil, fmt.Errorf("decode landing page views: %w", err)
	}
	return snap, nil
}

// Save encodes the snapshot and atomically replaces the data file. The temp
// file is created in the same directory so the rename never crosses a
// filesystem boundary.
func (g *Gateway) Save(snap *Snapshot) error {
	doc := document{}
	var err error
	if doc.Users, err = toPairs(snap.Users); err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if doc.BlogPosts, err = toPairs(snap.BlogPosts); err != nil {
		return fmt.Errorf("encode blog posts: %w", err)
	}
	if doc.Courses, err = toPairs(snap.Courses); err != nil {
		return fmt.Errorf("encode courses: %w", err)
	}
	if doc.Testimonials, err = toPairs(snap.Testimonials); err != nil {
		return fmt.Errorf("encode testimonials: %w", err)
	}
	if doc.Leads, err = toPairs(snap.Leads); err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	if doc.Settings, err = toPairs(snap.Settings); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if doc.LandingPageViews, err = toPairs(snap.LandingPageViews); err != nil {
		return fmt.Errorf("encode landing page views: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".funnelpress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, g.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// toPairs converts a collection map into its on-disk pair form with keys in
// sorted order, so repeated saves of identical state produce identical files.
func toPairs[T any](m map[string]T) (pairList, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make(pairList, 0, len(m))
	for _, k := range keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]json.RawMessage{kb, vb})
	}
	return pairs, nil
}

// toMap reconstructs a collection map from its on-disk pair form.
func toMap[T any](pairs pairList) (map[string]T, error) {
	m := make(map[string]T, len(pairs))
	for _, p := range pairs {
		var k string
		if err := json.Unmarshal(p[0], &k); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(p[1], &v); err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}
