package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const (
	notificationTitle = "Orden Cerrada"
	notificationIcon  = "/firebase-logo.png"
	notificationURL   = "/dashboard"
	notificationType  = "order_closed"
)

// PushService registers browser push subscriptions and fans closed-order
// notifications out to every registered subscription.
type PushService struct {
	logger    *gecho.Logger
	store     SubscriptionStore
	transport PushTransport
}

func NewPushService(logger *gecho.Logger, store SubscriptionStore, transport PushTransport) *PushService {
	return &PushService{
		logger:    logger,
		store:     store,
		transport: transport,
	}
}

// Subscribe registers a subscription for a user, replacing any previously
// stored subscription for that user. A failure to delete the old rows is
// logged but does not abort the registration.
func (ps *PushService) Subscribe(ctx context.Context, userId uuid.UUID, req *structs.SubscribeRequest) (*tables.PushSubscription, error) {
	if err := ps.store.DeleteByUser(ctx, userId); err != nil {
		ps.logger.Warn("Failed to delete previous push subscriptions",
			gecho.Field("user_id", userId),
			gecho.Field("error", err),
		)
	}

	sub := &tables.PushSubscription{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
		UserId:   userId,
	}

	inserted, err := ps.store.Insert(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to store push subscription: %w", err)
	}

	ps.logger.Info("Push subscription registered",
		gecho.Field("user_id", userId),
		gecho.Field("endpoint", req.Endpoint),
	)

	return inserted, nil
}

// NotifyOrderClosed sends the closed-order notification to every stored
// subscription. Deliveries run concurrently and independently: one failing
// endpoint never blocks or aborts the others. Endpoints the push service
// reports as gone are removed; all other failures are only logged.
func (ps *PushService) NotifyOrderClosed(ctx context.Context, orderId uuid.UUID) {
	subs, err := ps.store.All(ctx)
	if err != nil {
		ps.logger.Error("Failed to load push subscriptions",
			gecho.Field("order_id", orderId),
			gecho.Field("error", err),
		)
		return
	}

	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(buildOrderClosedPayload(orderId))
	if err != nil {
		ps.logger.Error("Failed to marshal notification payload", gecho.Field("error", err))
		return
	}

	var wg sync.WaitGroup
	for i := range subs {
		sub := subs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			ps.deliver(ctx, &sub, payload, orderId)
		}()
	}
	wg.Wait()

	ps.logger.Info("Order closed notifications dispatched",
		gecho.Field("order_id", orderId),
		gecho.Field("subscriptions", len(subs)),
	)
}

func (ps *PushService) deliver(ctx context.Context, sub *tables.PushSubscription, payload []byte, orderId uuid.UUID) {
	err := ps.transport.Send(ctx, sub, payload)
	if err == nil {
		return
	}

	if errors.Is(err, ErrSubscriptionGone) {
		ps.logger.Info("Removing expired push subscription", gecho.Field("endpoint", sub.Endpoint))
		if delErr := ps.store.DeleteByEndpoint(ctx, sub.Endpoint); delErr != nil {
			ps.logger.Error("Failed to remove expired push subscription",
				gecho.Field("endpoint", sub.Endpoint),
				gecho.Field("error", delErr),
			)
		}
		return
	}

	ps.logger.Error("Failed to send push notification",
		gecho.Field("endpoint", sub.Endpoint),
		gecho.Field("order_id", orderId),
		gecho.Field("error", err),
	)
}

func buildOrderClosedPayload(orderId uuid.UUID) structs.NotificationPayload {
	id := orderId.String()
	body := fmt.Sprintf("La Orden #%s... ha sido cerrada.", id[:8])

	return structs.NotificationPayload{
		Notification: structs.NotificationDisplay{
			Title: notificationTitle,
			Body:  body,
			Icon:  notificationIcon,
			Data: structs.NotificationData{
				URL:     notificationURL,
				OrderId: id,
			},
		},
		Data: structs.NotificationData{
			URL:     notificationURL,
			OrderId: id,
			Type:    notificationType,
		},
	}
}
