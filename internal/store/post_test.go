package store

import (
	"testing"
	"time"

	"funnelpress/internal/models"
	"funnelpress/internal/viewsim"
)

func TestCreatePostSlugUniqueness(t *testing.T) {
	s := testStore(t)

	first, err := s.CreatePost(models.BlogPost{Title: "Hướng Dẫn A-Z", Content: "nội dung"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if first.Slug != "huong-dan-a-z" {
		t.Errorf("first slug: got %q, want %q", first.Slug, "huong-dan-a-z")
	}

	second, err := s.CreatePost(models.BlogPost{Title: "Hướng Dẫn A-Z", Content: "khác"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if second.Slug != "huong-dan-a-z-1" {
		t.Errorf("second slug: got %q, want %q", second.Slug, "huong-dan-a-z-1")
	}

	third, err := s.CreatePost(models.BlogPost{Title: "Hướng Dẫn A-Z", Content: "nữa"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if third.Slug != "huong-dan-a-z-2" {
		t.Errorf("third slug: got %q, want %q", third.Slug, "huong-dan-a-z-2")
	}
}

func TestCreatePostDefaults(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Bài Mới", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == "" {
		t.Error("expected generated id")
	}
	if post.Views != 0 {
		t.Errorf("views: got %d, want 0", post.Views)
	}
	if post.LastDailyIncrement != "" {
		t.Errorf("lastDailyIncrement: got %q, want empty", post.LastDailyIncrement)
	}
	if post.Status != models.PostStatusPublished {
		t.Errorf("status: got %q, want published", post.Status)
	}
	if post.PublishedAt.IsZero() {
		t.Error("publishedAt not stamped")
	}
}

func TestUpdatePostRegeneratesSlug(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Tiêu Đề Cũ", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	newTitle := "Tiêu Đề Mới Hoàn Toàn"
	updated, err := s.UpdatePost(post.ID, PostUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated.Slug != "tieu-de-moi-hoan-toan" {
		t.Errorf("slug: got %q, want %q", updated.Slug, "tieu-de-moi-hoan-toan")
	}

	// Re-saving the same title must not suffix against the post itself.
	same := newTitle
	again, err := s.UpdatePost(post.ID, PostUpdate{Title: &same})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if again.Slug != "tieu-de-moi-hoan-toan" {
		t.Errorf("slug after no-op title update: got %q", again.Slug)
	}
}

func TestUpdatePostPartialMerge(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Giữ Nguyên", Excerpt: "cũ", Content: "cũ"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	excerpt := "mới"
	updated, err := s.UpdatePost(post.ID, PostUpdate{Excerpt: &excerpt})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated.Excerpt != "mới" {
		t.Errorf("excerpt: got %q", updated.Excerpt)
	}
	if updated.Title != "Giữ Nguyên" || updated.Content != "cũ" {
		t.Error("untouched fields changed")
	}
	if !updated.PublishedAt.Equal(post.PublishedAt) {
		t.Error("publishedAt must be immutable")
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	s := testStore(t)

	title := "x"
	updated, err := s.UpdatePost("missing-id", PostUpdate{Title: &title})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing id, got %+v", updated)
	}
}

func TestDeletePost(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Sắp Xoá", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	deleted, err := s.DeletePost(post.ID)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if !deleted {
		t.Error("expected true for existing post")
	}

	deleted, err = s.DeletePost(post.ID)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if deleted {
		t.Error("expected false for already-deleted post")
	}
}

func TestIncrementPostViews(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Đếm View", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	views, found, err := s.IncrementPostViews(post.ID)
	if err != nil || !found {
		t.Fatalf("IncrementPostViews: views=%d found=%v err=%v", views, found, err)
	}
	if views != 1 {
		t.Errorf("views: got %d, want 1", views)
	}

	views, found, err = s.IncrementPostViewsBySlug(post.Slug)
	if err != nil || !found {
		t.Fatalf("IncrementPostViewsBySlug: %v", err)
	}
	if views != 2 {
		t.Errorf("views: got %d, want 2", views)
	}

	_, found, err = s.IncrementPostViews("missing-id")
	if err != nil {
		t.Fatalf("IncrementPostViews: %v", err)
	}
	if found {
		t.Error("expected not-found for missing id")
	}
}

func TestDailyIncrementAppliedOnList(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Tăng Mỗi Ngày", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}

	today := viewsim.DateKey(time.Now())
	var listed *models.BlogPost
	for i := range posts {
		if posts[i].ID == post.ID {
			listed = &posts[i]
		}
	}
	if listed == nil {
		t.Fatal("created post missing from list")
	}

	want := viewsim.DailyIncrement(post.ID, today)
	if listed.Views != want {
		t.Errorf("views after first list: got %d, want %d", listed.Views, want)
	}
	if listed.LastDailyIncrement != today {
		t.Errorf("lastDailyIncrement: got %q, want %q", listed.LastDailyIncrement, today)
	}

	// Idempotent within the day: repeated lists change nothing.
	for i := 0; i < 5; i++ {
		posts, err = s.ListPosts()
		if err != nil {
			t.Fatalf("ListPosts: %v", err)
		}
		for j := range posts {
			if posts[j].ID == post.ID && posts[j].Views != want {
				t.Fatalf("views drifted on repeated list: got %d, want %d", posts[j].Views, want)
			}
		}
	}
}

func TestDailyIncrementIdempotentPerDay(t *testing.T) {
	p := &models.BlogPost{ID: "post-123", Views: 10}

	if changed := applyDailyViews(p, "2024-01-01"); !changed {
		t.Fatal("first application must change the post")
	}
	want := p.Views

	for i := 0; i < 10; i++ {
		if changed := applyDailyViews(p, "2024-01-01"); changed {
			t.Fatal("repeated application on the same date must be a no-op")
		}
	}
	if p.Views != want {
		t.Errorf("views: got %d, want %d", p.Views, want)
	}
	if p.LastDailyIncrement != "2024-01-01" {
		t.Errorf("lastDailyIncrement: got %q", p.LastDailyIncrement)
	}

	// A new date applies exactly once more.
	if changed := applyDailyViews(p, "2024-01-02"); !changed {
		t.Fatal("new date must apply")
	}
	if p.Views != want+viewsim.DailyIncrement("post-123", "2024-01-02") {
		t.Errorf("second-day views: got %d", p.Views)
	}
}

func TestListLessonPosts(t *testing.T) {
	s := testStore(t)

	mod1, mod2 := 1, 2
	name := "Module"
	ord1, ord2 := 1, 2

	mk := func(title string, module, order int, status models.PostStatus) {
		t.Helper()
		_, err := s.CreatePost(models.BlogPost{
			Title:          title,
			Content:        "x",
			Status:         status,
			ShowInNguoiMoi: true,
			ModuleID:       &module,
			ModuleName:     &name,
			LessonOrder:    &order,
		})
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
	}

	mk("Bài 2.2", mod2, ord2, models.PostStatusPublished)
	mk("Bài 1.1", mod1, ord1, models.PostStatusPublished)
	mk("Bài 2.1", mod2, ord1, models.PostStatusPublished)
	mk("Bài nháp", mod1, ord2, models.PostStatusDraft)

	lessons, err := s.ListLessonPosts()
	if err != nil {
		t.Fatalf("ListLessonPosts: %v", err)
	}

	// One seeded lesson (module 1, order 1) is also present.
	var titles []string
	for _, l := range lessons {
		if l.Status != models.PostStatusPublished {
			t.Errorf("draft leaked into lessons: %q", l.Title)
		}
		titles = append(titles, l.Title)
	}

	for i := 1; i < len(lessons); i++ {
		prev, cur := lessons[i-1], lessons[i]
		if *prev.ModuleID > *cur.ModuleID ||
			(*prev.ModuleID == *cur.ModuleID && *prev.LessonOrder > *cur.LessonOrder) {
			t.Errorf("lessons out of order: %v", titles)
		}
	}
}

func TestGetPostBySlug(t *testing.T) {
	s := testStore(t)

	post, err := s.CreatePost(models.BlogPost{Title: "Tìm Theo Slug", Content: "x"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	found, err := s.GetPostBySlug(post.Slug)
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if found == nil || found.ID != post.ID {
		t.Errorf("GetPostBySlug returned %+v", found)
	}

	missing, err := s.GetPostBySlug("khong-ton-tai")
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown slug, got %+v", missing)
	}
}
