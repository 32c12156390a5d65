// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
	"funnelpress/internal/persist"
	"funnelpress/internal/slug"
)

// officialLandingPages are the three ad-campaign landing pages tracked from
// day one. ResetLandingViews restores the map to exactly this set.
var officialLandingPages = []struct {
	Slug  string
	Title string
}{
	{Slug: "/affshopee", Title: "Affiliate Shopee"},
	{Slug: "/shopeezoom", Title: "Shopee Zoom"},
	{Slug: "/tiktokzoom", Title: "TikTok Zoom"},
}

// seedSnapshot builds the default data set used on first boot: sample blog
// posts (one a mini-course lesson), the three official courses, three
// testimonials, and the official landing pages.
func seedSnapshot() *persist.Snapshot {
	snap := persist.NewSnapshot()
	now := time.Now()

	seedPosts(snap, now)
	seedCourses(snap, now)
	seedTestimonials(snap, now)

	for _, page := range officialLandingPages {
		v := models.LandingPageView{
			ID:        uuid.NewString(),
			Slug:      page.Slug,
			Title:     page.Title,
			Views:     0,
			CreatedAt: now,
		}
		snap.LandingPageViews[v.ID] = v
	}

	return snap
}

func seedPosts(snap *persist.Snapshot, now time.Time) {
	moduleID := 1
	moduleName := "Bắt Đầu Với Affiliate"
	lessonOrder := 1
	duration := "12 phút"

	posts := []models.BlogPost{
		{
			Title:   "Hướng Dẫn Kiếm Tiền Với Shopee Affiliate Cho Người Mới 2026",
			Excerpt: "Lộ trình từng bước để có đơn hàng affiliate đầu tiên trong 30 ngày.",
			Content: "## Bắt đầu\n\nShopee Affiliate là cách đơn giản nhất để kiếm thu nhập online...",
			Status:  models.PostStatusPublished,

			ShowInBlog:     true,
			ShowInNguoiMoi: true,
			ModuleID:       &moduleID,
			ModuleName:     &moduleName,
			LessonOrder:    &lessonOrder,
			Duration:       &duration,
			Objectives: []string{
				"Hiểu cách hoa hồng affiliate hoạt động",
				"Tạo tài khoản Shopee Affiliate",
			},
			ActionSteps: []string{
				"Đăng ký tài khoản affiliate",
				"Chọn 3 sản phẩm đầu tiên để giới thiệu",
			},
		},
		{
			Title:      "5 Sai Lầm Khiến Bạn Không Có Đơn Hàng TikTok Shop",
			Excerpt:    "Những lỗi phổ biến nhất và cách sửa ngay hôm nay.",
			Content:    "## Sai lầm số 1\n\nĐăng video không có call-to-action...",
			Status:     models.PostStatusPublished,
			ShowInBlog: true,
		},
	}

	for _, p := range posts {
		p.ID = uuid.NewString()
		p.Slug = slug.Generate(p.Title)
		p.PublishedAt = now
		snap.BlogPosts[p.ID] = p
	}
}

func seedCourses(snap *persist.Snapshot, now time.Time) {
	affshopee := "/affshopee"
	shopeezoom := "/shopeezoom"
	tiktokzoom := "/tiktokzoom"
	bestseller := "Bán chạy nhất"

	courses := []models.Course{
		{
			Title:       "Affiliate Shopee Thực Chiến",
			Description: "Xây dựng thu nhập affiliate Shopee từ con số 0.",
			Price:       "599000",
			ImageURL:    "/images/courses/affshopee.jpg",
			CourseURL:   &affshopee,
			Duration:    "8 tuần",
			Badge:       &bestseller,
		},
		{
			Title:       "Shopee Zoom — Bán Hàng Shopee Chuyên Sâu",
			Description: "Tối ưu gian hàng, quảng cáo và livestream trên Shopee.",
			Price:       "899000",
			ImageURL:    "/images/courses/shopeezoom.jpg",
			CourseURL:   &shopeezoom,
			Duration:    "10 tuần",
		},
		{
			Title:       "TikTok Zoom — Bùng Nổ Đơn Hàng TikTok Shop",
			Description: "Từ video đầu tiên đến gian hàng nghìn đơn.",
			Price:       "799000",
			ImageURL:    "/images/courses/tiktokzoom.jpg",
			CourseURL:   &tiktokzoom,
			Duration:    "10 tuần",
		},
	}

	for _, c := range courses {
		c.ID = uuid.NewString()
		c.CreatedAt = now
		c.Rating = "5.0"
		c.Status = models.CourseStatusActive
		snap.Courses[c.ID] = c
	}
}

func seedTestimonials(snap *persist.Snapshot, now time.Time) {
	shop := "Shop Mẹ Bỉm Hà Nội"

	testimonials := []models.Testimonial{
		{
			Name:     "Nguyễn Thu Hà",
			Title:    "Học viên Affiliate Shopee",
			Content:  "Sau 2 tháng mình đã có hoa hồng đều đặn mỗi tuần.",
			Rating:   5,
			Featured: true,
		},
		{
			Name:    "Trần Minh Quân",
			Title:   "Chủ shop TikTok",
			Company: &shop,
			Content: "Khoá TikTok Zoom giúp shop mình tăng gấp ba đơn hàng.",
			Rating:  5,
		},
		{
			Name:    "Lê Hoàng Yến",
			Title:   "Nhân viên văn phòng",
			Content: "Kiếm thêm thu nhập buổi tối mà không bỏ việc chính.",
			Rating:  5,
		},
	}

	for _, t := range testimonials {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		snap.Testimonials[t.ID] = t
	}
}
