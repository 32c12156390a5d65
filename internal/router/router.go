// Package router sets up all HTTP routes and middleware chains for the
// FunnelPress API. It organizes routes into open and auth-gated groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"funnelpress/internal/handlers"
	"funnelpress/internal/middleware"
	"funnelpress/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware; applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.LoadSession(sessionStore))

	// Health check; no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/auth/login", api.Login)
		r.Post("/auth/logout", api.Logout)

		// Posts; reads and view tracking are open.
		r.Get("/posts", api.ListPosts)
		r.Get("/posts/slug/{slug}", api.GetPostBySlug)
		r.Get("/posts/{id}", api.GetPost)
		r.Post("/posts/slug/{slug}/view", api.IncrementPostViewBySlug)
		r.Post("/posts/{id}/view", api.IncrementPostView)

		// Courses and testimonials; reads are open.
		r.Get("/courses", api.ListCourses)
		r.Get("/courses/{id}", api.GetCourse)
		r.Get("/testimonials", api.ListTestimonials)

		// Lead capture and landing analytics; open, they back public forms
		// and ad landing pages.
		r.Post("/leads", api.CreateLead)
		r.Get("/landing-views", api.ListLandingViews)
		r.Post("/landing-views/{slug}/view", api.IncrementLandingView)

		// Admin; requires a valid session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/auth/change-password", api.ChangePassword)

			r.Post("/posts", api.CreatePost)
			r.Put("/posts/{id}", api.UpdatePost)
			r.Delete("/posts/{id}", api.DeletePost)

			r.Post("/courses", api.CreateCourse)
			r.Put("/courses/{id}", api.UpdateCourse)
			r.Delete("/courses/{id}", api.DeleteCourse)

			r.Post("/testimonials", api.CreateTestimonial)
			r.Put("/testimonials/{id}", api.UpdateTestimonial)
			r.Delete("/testimonials/{id}", api.DeleteTestimonial)

			r.Get("/leads", api.ListLeads)

			r.Get("/settings", api.ListSettings)
			r.Post("/settings", api.UpsertSetting)

			r.Delete("/landing-views/reset", api.ResetLandingViews)

			r.Get("/stats", api.GetStats)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
