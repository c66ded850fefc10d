package orders

import (
	"comanda_server/api/middleware"
	"comanda_server/services"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService, mw *middleware.Middleware) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)

		r.Get("/", orm.HandleList)
		r.Get("/{id}", orm.HandleFetch)
		r.Post("/", orm.HandleCreate)

		r.Group(func(r chi.Router) {
			r.Use(orm.mw.RequireRole(tables.RoleAdmin, tables.RoleWaiter))
			r.Put("/{id}", orm.HandleUpdateStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(orm.mw.RequireRole(tables.RoleAdmin))
			r.Delete("/{id}", orm.HandleDelete)
		})
	})
}
