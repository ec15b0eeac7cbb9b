package mockapi

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public reads, the auth endpoints and the
// token-protected writes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, authLimiter rateLimiter) {
	r.Group(func(r chi.Router) {
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/skills/{categoryID}", handlers.skillHandler.getSkill())

		r.Get("/site-settings", handlers.settingsHandler.getSettings())
	})

	r.Group(func(r chi.Router) {
		r.Use(authLimiter.limit)

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/register", handlers.authHandler.register())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Post("/projects/with-files", handlers.projectHandler.createProjectWithFiles())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Put("/projects/{projectID}/with-files", handlers.projectHandler.updateProjectWithFiles())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/skills", handlers.skillHandler.createSkill())
		r.Post("/skills/direct", handlers.skillHandler.createSkillDirect())
		r.Put("/skills/reorder", handlers.skillHandler.reorderSkills())
		r.Put("/skills/{categoryID}", handlers.skillHandler.updateSkill())
		r.Delete("/skills/{categoryID}", handlers.skillHandler.deleteSkill())
		r.Post("/skills/{categoryID}/items", handlers.skillHandler.addItem())
		r.Put("/skills/{categoryID}/items/{itemID}", handlers.skillHandler.updateItem())
		r.Delete("/skills/{categoryID}/items/{itemID}", handlers.skillHandler.deleteItem())

		r.Put("/site-settings", handlers.settingsHandler.updateSettings())
	})
}
