package services

import (
	"context"

	"comanda_server/database"

	"github.com/google/uuid"
)

// NameIndex answers whether a name is already taken, optionally excluding
// one row (the row being renamed). Matching is case-insensitive to mirror
// the unique indexes on lower(name), which remain the authoritative guard.
type NameIndex interface {
	Taken(ctx context.Context, name string, excludeId uuid.UUID) (bool, error)
}

type bunNameIndex[T any] struct {
	db     *database.DB
	column string
}

// NewNameIndex builds a NameIndex backed by an ILIKE lookup on the given
// column of T's table.
func NewNameIndex[T any](db *database.DB, column string) NameIndex {
	return &bunNameIndex[T]{db: db, column: column}
}

func (n *bunNameIndex[T]) Taken(ctx context.Context, name string, excludeId uuid.UUID) (bool, error) {
	query := database.Query[T](n.db).WhereILike(n.column, name)
	if excludeId != uuid.Nil {
		query = query.WhereNot("id", excludeId)
	}
	return query.Exists(ctx)
}
