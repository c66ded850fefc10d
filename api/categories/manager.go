package categories

import (
	"comanda_server/api/middleware"
	"comanda_server/services"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
	mw              *middleware.Middleware
}

func NewCategoryRoutesManager(logger *gecho.Logger, categoryService *services.CategoryService, mw *middleware.Middleware) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
		mw:              mw,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		// Public reads
		r.Get("/", crm.HandleList)
		r.Get("/{id}", crm.HandleFetch)

		// Admin writes
		r.Group(func(r chi.Router) {
			r.Use(crm.mw.UserAuthMiddleware)
			r.Use(crm.mw.RequireRole(tables.RoleAdmin))
			r.Post("/", crm.HandleCreate)
			r.Put("/{id}", crm.HandleUpdate)
			r.Delete("/{id}", crm.HandleDelete)
		})
	})
}
