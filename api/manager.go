package api

import (
	"comanda_server/api/auth"
	"comanda_server/api/categories"
	"comanda_server/api/health"
	"comanda_server/api/middleware"
	"comanda_server/api/orders"
	"comanda_server/api/products"
	"comanda_server/api/push"
	"comanda_server/api/users"
	"comanda_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes     *auth.AuthRoutesManager
	userRoutes     *users.UserRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	productRoutes  *products.ProductRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	pushRoutes     *push.PushRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService),
		userRoutes:     users.NewUserRoutesManager(logger, sm.UserService, mw),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CategoryService, mw),
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService, mw),
		orderRoutes:    orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		pushRoutes:     push.NewPushRoutesManager(logger, sm.PushService, mw),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.userRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.pushRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
