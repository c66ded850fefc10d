package services

import (
	"context"
	"fmt"

	"comanda_server/database"
	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// OrderNotifier is the outbound side of closing an order. PushService is the
// production implementation.
type OrderNotifier interface {
	NotifyOrderClosed(ctx context.Context, orderId uuid.UUID)
}

// OrderService coordinates pricing, persistence and notification for orders.
type OrderService struct {
	logger   *gecho.Logger
	store    OrderStore
	products ProductFinder
	notifier OrderNotifier
}

func NewOrderService(logger *gecho.Logger, store OrderStore, products ProductFinder, notifier OrderNotifier) *OrderService {
	return &OrderService{
		logger:   logger,
		store:    store,
		products: products,
		notifier: notifier,
	}
}

// CreateOrder prices the requested items and persists the order with its
// items in a single transaction. The order opens with status "open" and a
// total derived from the captured unit prices.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	priced, err := PriceOrder(ctx, os.products, req.Items)
	if err != nil {
		return nil, err
	}

	order := &tables.Order{
		Total:  priced.Total,
		Status: tables.OrderStatusOpen,
	}

	items := make([]*tables.OrderItem, 0, len(priced.Items))
	for _, item := range priced.Items {
		items = append(items, &tables.OrderItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			ItemPrice: item.ItemPrice,
		})
	}

	created, err := os.store.CreateWithItems(ctx, order, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", created.Id),
		gecho.Field("total", created.Total),
		gecho.Field("items", len(items)),
	)

	return created, nil
}

// GetOrder fetches an order with its items and their products.
func (os *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := os.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (os *OrderService) ListOrders(ctx context.Context, status *tables.OrderStatus, p database.Pagination) (*database.PaginationResult[tables.Order], error) {
	return os.store.List(ctx, status, p)
}

// UpdateStatus sets the order status. Setting it to closed triggers the
// push notification fan-out in the background; the response never waits on
// deliveries. Closing an already-closed order is not an error and triggers
// the fan-out again.
func (os *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	order, err := os.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if status == tables.OrderStatusClosed {
		os.logger.Info("Order closed, dispatching notifications", gecho.Field("order_id", id))
		// Detached from the request context so an early client disconnect
		// cannot cancel the deliveries.
		go os.notifier.NotifyOrderClosed(context.Background(), id)
	}

	return order, nil
}

// DeleteOrder removes an order and its items.
func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return os.store.Delete(ctx, id)
}
