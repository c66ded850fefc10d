package products

import (
	"comanda_server/api/middleware"
	"comanda_server/services"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(logger *gecho.Logger, productService *services.ProductService, mw *middleware.Middleware) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		// Public reads
		r.Get("/", prm.HandleList)
		r.Get("/{id}", prm.HandleFetch)

		// Admin writes
		r.Group(func(r chi.Router) {
			r.Use(prm.mw.UserAuthMiddleware)
			r.Use(prm.mw.RequireRole(tables.RoleAdmin))
			r.Post("/", prm.HandleCreate)
			r.Put("/{id}", prm.HandleUpdate)
			r.Delete("/{id}", prm.HandleDelete)
		})
	})
}
