package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// recordingNotifier captures fan-out triggers on a channel so tests can
// wait for the detached goroutine.
type recordingNotifier struct {
	calls chan uuid.UUID
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{calls: make(chan uuid.UUID, 8)}
}

func (n *recordingNotifier) NotifyOrderClosed(ctx context.Context, orderId uuid.UUID) {
	n.calls <- orderId
}

func (n *recordingNotifier) waitForCall(t *testing.T) uuid.UUID {
	t.Helper()
	select {
	case id := <-n.calls:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("expected notification fan-out to be triggered")
		return uuid.Nil
	}
}

func (n *recordingNotifier) assertNoCall(t *testing.T) {
	t.Helper()
	select {
	case <-n.calls:
		t.Fatal("unexpected notification fan-out trigger")
	case <-time.After(100 * time.Millisecond):
	}
}

func newTestOrderService(store OrderStore, finder ProductFinder, notifier OrderNotifier) *OrderService {
	return NewOrderService(gecho.NewDefaultLogger(), store, finder, notifier)
}

func TestCreateOrder(t *testing.T) {
	p1 := uuid.New()

	t.Run("prices items and persists order with items", func(t *testing.T) {
		finder := new(MockProductFinder)
		finder.On("FindByIDs", mock.Anything, []uuid.UUID{p1}).Return([]tables.Product{
			{Id: p1, Price: decimal.RequireFromString("10.00")},
		}, nil)

		store := new(MockOrderStore)
		store.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*tables.Order"), mock.Anything).
			Return(&tables.Order{Id: uuid.New(), Status: tables.OrderStatusOpen}, nil).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*tables.Order)
				items := args.Get(2).([]*tables.OrderItem)

				assert.Equal(t, tables.OrderStatusOpen, order.Status)
				assert.True(t, order.Total.Equal(decimal.RequireFromString("20.00")))
				assert.Len(t, items, 1)
				assert.Equal(t, p1, items[0].ProductId)
				assert.Equal(t, 2, items[0].Quantity)
				assert.True(t, items[0].ItemPrice.Equal(decimal.RequireFromString("10.00")))
			})

		svc := newTestOrderService(store, finder, newRecordingNotifier())

		created, err := svc.CreateOrder(context.Background(), &structs.OrderRequest{
			Items: []structs.OrderItemRequest{{ProductId: p1, Quantity: 2}},
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		store.AssertExpectations(t)
	})

	t.Run("empty item list performs no writes", func(t *testing.T) {
		finder := new(MockProductFinder)
		store := new(MockOrderStore)
		svc := newTestOrderService(store, finder, newRecordingNotifier())

		_, err := svc.CreateOrder(context.Background(), &structs.OrderRequest{})

		var validationErr *lib.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		store.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown product performs no writes", func(t *testing.T) {
		finder := new(MockProductFinder)
		finder.On("FindByIDs", mock.Anything, mock.Anything).Return([]tables.Product{}, nil)
		store := new(MockOrderStore)
		svc := newTestOrderService(store, finder, newRecordingNotifier())

		_, err := svc.CreateOrder(context.Background(), &structs.OrderRequest{
			Items: []structs.OrderItemRequest{{ProductId: p1, Quantity: 1}},
		})

		assert.ErrorIs(t, err, lib.ErrNotFound)
		store.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure surfaces to caller", func(t *testing.T) {
		finder := new(MockProductFinder)
		finder.On("FindByIDs", mock.Anything, mock.Anything).Return([]tables.Product{
			{Id: p1, Price: decimal.RequireFromString("5.00")},
		}, nil)

		store := new(MockOrderStore)
		store.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("insert failed"))

		svc := newTestOrderService(store, finder, newRecordingNotifier())

		_, err := svc.CreateOrder(context.Background(), &structs.OrderRequest{
			Items: []structs.OrderItemRequest{{ProductId: p1, Quantity: 1}},
		})

		assert.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	orderId := uuid.New()

	t.Run("closing triggers notification fan-out", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("UpdateStatus", mock.Anything, orderId, tables.OrderStatusClosed).
			Return(&tables.Order{Id: orderId, Status: tables.OrderStatusClosed}, nil)

		notifier := newRecordingNotifier()
		svc := newTestOrderService(store, new(MockProductFinder), notifier)

		order, err := svc.UpdateStatus(context.Background(), orderId, tables.OrderStatusClosed)

		assert.NoError(t, err)
		assert.Equal(t, tables.OrderStatusClosed, order.Status)
		assert.Equal(t, orderId, notifier.waitForCall(t))
	})

	t.Run("re-closing an already closed order re-triggers fan-out", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("UpdateStatus", mock.Anything, orderId, tables.OrderStatusClosed).
			Return(&tables.Order{Id: orderId, Status: tables.OrderStatusClosed}, nil).Twice()

		notifier := newRecordingNotifier()
		svc := newTestOrderService(store, new(MockProductFinder), notifier)

		_, err := svc.UpdateStatus(context.Background(), orderId, tables.OrderStatusClosed)
		assert.NoError(t, err)
		notifier.waitForCall(t)

		_, err = svc.UpdateStatus(context.Background(), orderId, tables.OrderStatusClosed)
		assert.NoError(t, err)
		notifier.waitForCall(t)

		store.AssertExpectations(t)
	})

	t.Run("setting status to open does not trigger fan-out", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("UpdateStatus", mock.Anything, orderId, tables.OrderStatusOpen).
			Return(&tables.Order{Id: orderId, Status: tables.OrderStatusOpen}, nil)

		notifier := newRecordingNotifier()
		svc := newTestOrderService(store, new(MockProductFinder), notifier)

		_, err := svc.UpdateStatus(context.Background(), orderId, tables.OrderStatusOpen)

		assert.NoError(t, err)
		notifier.assertNoCall(t)
	})

	t.Run("missing order does not trigger fan-out", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("UpdateStatus", mock.Anything, orderId, tables.OrderStatusClosed).
			Return(nil, lib.ErrNotFound)

		notifier := newRecordingNotifier()
		svc := newTestOrderService(store, new(MockProductFinder), notifier)

		_, err := svc.UpdateStatus(context.Background(), orderId, tables.OrderStatusClosed)

		assert.ErrorIs(t, err, lib.ErrNotFound)
		notifier.assertNoCall(t)
	})
}

func TestGetOrder(t *testing.T) {
	orderId := uuid.New()

	t.Run("missing order maps to not found", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("FindByID", mock.Anything, orderId).Return(nil, nil)

		svc := newTestOrderService(store, new(MockProductFinder), newRecordingNotifier())

		_, err := svc.GetOrder(context.Background(), orderId)
		assert.ErrorIs(t, err, lib.ErrNotFound)
	})
}
