package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkarev/userhub/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login/", h.login)
		r.Post("/token", h.token)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.With(h.requireRole(models.RoleAdmin, models.RoleManager)).Get("/", h.listUsers)
			r.With(h.requireRole(models.RoleAdmin, models.RoleManager)).Post("/", h.createUser)

			// per-id routes check ownership inside the handler
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
			r.With(h.requireRole(models.RoleAdmin, models.RoleManager)).Post("/{id}/verify", h.verifyUser)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
