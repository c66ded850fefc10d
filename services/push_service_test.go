package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPushService(store SubscriptionStore, transport PushTransport) *PushService {
	return NewPushService(gecho.NewDefaultLogger(), store, transport)
}

func TestSubscribe(t *testing.T) {
	userId := uuid.New()
	req := &structs.SubscribeRequest{
		Endpoint: "https://push.example.com/sub/abc",
		Keys:     structs.SubscriptionKeys{P256dh: "p256dh-key", Auth: "auth-key"},
	}

	t.Run("replaces any previous subscription for the user", func(t *testing.T) {
		store := new(MockSubscriptionStore)
		store.On("DeleteByUser", mock.Anything, userId).Return(nil)
		store.On("Insert", mock.Anything, mock.AnythingOfType("*tables.PushSubscription")).
			Return(&tables.PushSubscription{Id: uuid.New()}, nil).
			Run(func(args mock.Arguments) {
				sub := args.Get(1).(*tables.PushSubscription)
				assert.Equal(t, req.Endpoint, sub.Endpoint)
				assert.Equal(t, req.Keys.P256dh, sub.P256dh)
				assert.Equal(t, req.Keys.Auth, sub.Auth)
				assert.Equal(t, userId, sub.UserId)
			})

		svc := newTestPushService(store, new(MockPushTransport))

		_, err := svc.Subscribe(context.Background(), userId, req)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("delete failure does not block the insert", func(t *testing.T) {
		store := new(MockSubscriptionStore)
		store.On("DeleteByUser", mock.Anything, userId).Return(errors.New("timeout"))
		store.On("Insert", mock.Anything, mock.Anything).
			Return(&tables.PushSubscription{Id: uuid.New()}, nil)

		svc := newTestPushService(store, new(MockPushTransport))

		_, err := svc.Subscribe(context.Background(), userId, req)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("insert failure surfaces to caller", func(t *testing.T) {
		store := new(MockSubscriptionStore)
		store.On("DeleteByUser", mock.Anything, userId).Return(nil)
		store.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

		svc := newTestPushService(store, new(MockPushTransport))

		_, err := svc.Subscribe(context.Background(), userId, req)

		assert.Error(t, err)
	})
}

func TestNotifyOrderClosed(t *testing.T) {
	orderId := uuid.New()

	sub := func(endpoint string) tables.PushSubscription {
		return tables.PushSubscription{
			Id:       uuid.New(),
			Endpoint: endpoint,
			P256dh:   "p256dh-key",
			Auth:     "auth-key",
			UserId:   uuid.New(),
		}
	}

	t.Run("dispatches once per stored subscription", func(t *testing.T) {
		subs := []tables.PushSubscription{sub("https://a"), sub("https://b"), sub("https://c")}

		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return(subs, nil)

		transport := new(MockPushTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		transport.AssertExpectations(t)
		store.AssertNotCalled(t, "DeleteByEndpoint", mock.Anything, mock.Anything)
	})

	t.Run("gone endpoint is pruned, others unaffected", func(t *testing.T) {
		a, b, c := sub("https://a"), sub("https://b"), sub("https://c")

		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return([]tables.PushSubscription{a, b, c}, nil)
		store.On("DeleteByEndpoint", mock.Anything, b.Endpoint).Return(nil).Once()

		transport := new(MockPushTransport)
		transport.On("Send", mock.Anything, mock.MatchedBy(func(s *tables.PushSubscription) bool {
			return s.Endpoint == b.Endpoint
		}), mock.Anything).Return(ErrSubscriptionGone)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		store.AssertExpectations(t)
		transport.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("transient failure keeps the subscription row", func(t *testing.T) {
		a := sub("https://a")

		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return([]tables.PushSubscription{a}, nil)

		transport := new(MockPushTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("429 too many requests"))

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		store.AssertNotCalled(t, "DeleteByEndpoint", mock.Anything, mock.Anything)
	})

	t.Run("load failure aborts without dispatching", func(t *testing.T) {
		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return(nil, errors.New("connection refused"))

		transport := new(MockPushTransport)

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no subscriptions is a no-op", func(t *testing.T) {
		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return([]tables.PushSubscription{}, nil)

		transport := new(MockPushTransport)

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payload carries display block and duplicated data block", func(t *testing.T) {
		a := sub("https://a")

		store := new(MockSubscriptionStore)
		store.On("All", mock.Anything).Return([]tables.PushSubscription{a}, nil)

		var captured []byte
		transport := new(MockPushTransport)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).([]byte)
			})

		newTestPushService(store, transport).NotifyOrderClosed(context.Background(), orderId)

		var payload structs.NotificationPayload
		assert.NoError(t, json.Unmarshal(captured, &payload))
		assert.Equal(t, "Orden Cerrada", payload.Notification.Title)
		assert.Contains(t, payload.Notification.Body, orderId.String()[:8])
		assert.Equal(t, "/firebase-logo.png", payload.Notification.Icon)
		assert.Equal(t, "/dashboard", payload.Data.URL)
		assert.Equal(t, orderId.String(), payload.Data.OrderId)
		assert.Equal(t, "order_closed", payload.Data.Type)
	})
}
