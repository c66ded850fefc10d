package services

import (
	"context"

	"comanda_server/database"
	"comanda_server/lib"
	"comanda_server/structs/tables"

	"github.com/google/uuid"
)

// SubscriptionStore persists browser push subscriptions.
type SubscriptionStore interface {
	DeleteByUser(ctx context.Context, userId uuid.UUID) error
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	Insert(ctx context.Context, sub *tables.PushSubscription) (*tables.PushSubscription, error)
	All(ctx context.Context) ([]tables.PushSubscription, error)
}

type bunSubscriptionStore struct {
	db *database.DB
}

func NewSubscriptionStore(db *database.DB) SubscriptionStore {
	return &bunSubscriptionStore{db: db}
}

func (s *bunSubscriptionStore) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	_, err := database.Query[tables.PushSubscription](s.db).
		Where("user_id", userId).
		Delete(ctx)
	return err
}

func (s *bunSubscriptionStore) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	_, err := database.Query[tables.PushSubscription](s.db).
		Where("endpoint", endpoint).
		Delete(ctx)
	return err
}

func (s *bunSubscriptionStore) Insert(ctx context.Context, sub *tables.PushSubscription) (*tables.PushSubscription, error) {
	inserted, err := database.Query[tables.PushSubscription](s.db).Insert(ctx, sub)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return inserted, nil
}

func (s *bunSubscriptionStore) All(ctx context.Context) ([]tables.PushSubscription, error) {
	return database.Query[tables.PushSubscription](s.db).All(ctx)
}
