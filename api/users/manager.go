package users

import (
	"comanda_server/api/middleware"
	"comanda_server/services"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type UserRoutesManager struct {
	logger      *gecho.Logger
	userService *services.UserService
	mw          *middleware.Middleware
}

func NewUserRoutesManager(logger *gecho.Logger, userService *services.UserService, mw *middleware.Middleware) *UserRoutesManager {
	return &UserRoutesManager{
		logger:      logger,
		userService: userService,
		mw:          mw,
	}
}

func (urm *UserRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(urm.mw.UserAuthMiddleware)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(urm.mw.RequireRole(tables.RoleAdmin))
			r.Get("/", urm.HandleList)
			r.Post("/", urm.HandleCreate)
			r.Delete("/{id}", urm.HandleDelete)
		})

		// Self-or-admin, checked in the handler
		r.Get("/{id}", urm.HandleFetch)
		r.Put("/{id}", urm.HandleUpdate)
	})
}
