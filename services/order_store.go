package services

import (
	"context"

	"comanda_server/database"
	"comanda_server/lib"
	"comanda_server/structs/tables"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// OrderStore persists orders and their items. The interface exists so the
// order service can be tested without a database.
type OrderStore interface {
	// CreateWithItems inserts the order and all of its items atomically;
	// if any insert fails the order row is rolled back with it.
	CreateWithItems(ctx context.Context, order *tables.Order, items []*tables.OrderItem) (*tables.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*tables.Order, error)
	List(ctx context.Context, status *tables.OrderStatus, p database.Pagination) (*database.PaginationResult[tables.Order], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bunOrderStore struct {
	db *database.DB
}

func NewOrderStore(db *database.DB) OrderStore {
	return &bunOrderStore{db: db}
}

func (s *bunOrderStore) CreateWithItems(ctx context.Context, order *tables.Order, items []*tables.OrderItem) (*tables.Order, error) {
	err := s.db.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Returning("*").Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for _, item := range items {
			item.OrderId = order.Id
		}

		if _, err := tx.NewInsert().Model(&items).Returning("*").Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

func (s *bunOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	return database.Query[tables.Order](s.db).
		Where("id", id).
		Relation("Items").
		Relation("Items.Product").
		First(ctx)
}

func (s *bunOrderStore) List(ctx context.Context, status *tables.OrderStatus, p database.Pagination) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](s.db).
		Relation("Items").
		Relation("Items.Product").
		OrderBy("created_at", database.DESC)

	if status != nil {
		query = query.Where("status", *status)
	}

	return query.Paginate(ctx, p)
}

func (s *bunOrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	rows, err := database.Query[tables.Order](s.db).
		Where("id", id).
		Update(ctx, map[string]any{"status": status})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return s.FindByID(ctx, id)
}

func (s *bunOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	// Items go first; the schema has no ON DELETE CASCADE on order_items.
	return s.db.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.OrderItem)(nil)).Where("order_id = ?", id).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().Model((*tables.Order)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}

		rows, _ := res.RowsAffected()
		if rows == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
}
