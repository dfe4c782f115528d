package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes binds every endpoint under /api. Public routes need no
// credentials; everything in the admin group passes through the bearer-token
// middleware first.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/admin/login", handlers.authHandler.login())
			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Post("/contact", handlers.contactHandler.submitMessage())
		})

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/contact", handlers.contactHandler.getAllMessages())

			r.Post("/upload", handlers.uploadHandler.uploadProjectImage())
		})
	})
}
