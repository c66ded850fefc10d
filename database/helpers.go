package database

import (
	"context"

	"github.com/google/uuid"
)

// Pagination holds the page parameters for list queries.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// PaginationResult wraps a page of items with the total row count.
type PaginationResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func (p *Pagination) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 25
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// FindByID fetches a single record by its primary key. A missing row is
// returned as (nil, nil).
func FindByID[T any](ctx context.Context, db *DB, id uuid.UUID) (*T, error) {
	return Query[T](db).Where("id", id).First(ctx)
}

// Paginate runs the query twice, once for the total count and once for the
// requested page, and returns both.
func (q *QueryBuilder[T]) Paginate(ctx context.Context, p Pagination) (*PaginationResult[T], error) {
	p.normalize()

	total, err := q.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := q.Limit(p.PageSize).Offset((p.Page - 1) * p.PageSize).All(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + p.PageSize - 1) / p.PageSize

	return &PaginationResult[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}, nil
}
