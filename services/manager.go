package services

import (
	"comanda_server/database"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	UserService     *UserService
	CategoryService *CategoryService
	ProductService  *ProductService
	OrderService    *OrderService
	PushService     *PushService
	CacheService    *CacheService
	HealthService   *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg.Cache)
	authService := NewAuthService(logger, cfg.Auth, db)
	userService := NewUserService(logger, db, NewNameIndex[tables.User](db, "username"))
	categoryService := NewCategoryService(logger, db, NewNameIndex[tables.Category](db, "name"))
	productService := NewProductService(logger, db, cacheService, cfg.Cache, NewNameIndex[tables.Product](db, "name"))
	pushService := NewPushService(logger, NewSubscriptionStore(db), NewWebPushTransport(cfg.Push))
	orderService := NewOrderService(logger, NewOrderStore(db), productService, pushService)
	healthService := NewHealthService(logger, db, cacheService)

	return &ServiceManager{
		AuthService:     authService,
		UserService:     userService,
		CategoryService: categoryService,
		ProductService:  productService,
		OrderService:    orderService,
		PushService:     pushService,
		CacheService:    cacheService,
		HealthService:   healthService,
	}
}
