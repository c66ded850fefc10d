package push

import (
	"comanda_server/api/middleware"
	"comanda_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PushRoutesManager struct {
	logger      *gecho.Logger
	pushService *services.PushService
	mw          *middleware.Middleware
}

func NewPushRoutesManager(logger *gecho.Logger, pushService *services.PushService, mw *middleware.Middleware) *PushRoutesManager {
	return &PushRoutesManager{
		logger:      logger,
		pushService: pushService,
		mw:          mw,
	}
}

func (prm *PushRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)
		r.Post("/subscribe-push", prm.HandleSubscribe)
	})
}
