package services

import (
	"context"
	"strings"

	"comanda_server/database"
	"comanda_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeNameIndex matches names case-insensitively against a fixed set of
// rows, the way the ILIKE lookup does against the table. It records the
// last lookup so tests can assert the exclude-self wiring.
type fakeNameIndex struct {
	rows map[uuid.UUID]string
	err  error

	lastName    string
	lastExclude uuid.UUID
}

func (f *fakeNameIndex) Taken(ctx context.Context, name string, excludeId uuid.UUID) (bool, error) {
	f.lastName = name
	f.lastExclude = excludeId
	if f.err != nil {
		return false, f.err
	}
	for id, existing := range f.rows {
		if id != excludeId && strings.EqualFold(existing, name) {
			return true, nil
		}
	}
	return false, nil
}

type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.Product), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) CreateWithItems(ctx context.Context, order *tables.Order, items []*tables.OrderItem) (*tables.Order, error) {
	args := m.Called(ctx, order, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Order), args.Error(1)
}

func (m *MockOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Order), args.Error(1)
}

func (m *MockOrderStore) List(ctx context.Context, status *tables.OrderStatus, p database.Pagination) (*database.PaginationResult[tables.Order], error) {
	args := m.Called(ctx, status, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.PaginationResult[tables.Order]), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Order), args.Error(1)
}

func (m *MockOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubscriptionStore struct {
	mock.Mock
}

func (m *MockSubscriptionStore) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	args := m.Called(ctx, userId)
	return args.Error(0)
}

func (m *MockSubscriptionStore) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	args := m.Called(ctx, endpoint)
	return args.Error(0)
}

func (m *MockSubscriptionStore) Insert(ctx context.Context, sub *tables.PushSubscription) (*tables.PushSubscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.PushSubscription), args.Error(1)
}

func (m *MockSubscriptionStore) All(ctx context.Context) ([]tables.PushSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.PushSubscription), args.Error(1)
}

type MockPushTransport struct {
	mock.Mock
}

func (m *MockPushTransport) Send(ctx context.Context, sub *tables.PushSubscription, payload []byte) error {
	args := m.Called(ctx, sub, payload)
	return args.Error(0)
}
