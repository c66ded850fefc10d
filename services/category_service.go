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

type CategoryService struct {
	logger *gecho.Logger
	db     *database.DB
	names  NameIndex
}

func NewCategoryService(logger *gecho.Logger, db *database.DB, names NameIndex) *CategoryService {
	return &CategoryService{
		logger: logger,
		db:     db,
		names:  names,
	}
}

// GetAllCategories returns categories newest first.
func (cs *CategoryService) GetAllCategories(ctx context.Context) ([]tables.Category, error) {
	return database.Query[tables.Category](cs.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
}

func (cs *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](ctx, cs.db, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

func (cs *CategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	if err := cs.ensureNameAvailable(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	created, err := database.Query[tables.Category](cs.db).Insert(ctx, &tables.Category{Name: req.Name})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Category created", gecho.Field("category_id", created.Id), gecho.Field("name", created.Name))

	return created, nil
}

func (cs *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	if err := cs.ensureNameAvailable(ctx, req.Name, id); err != nil {
		return nil, err
	}

	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		Update(ctx, map[string]any{"name": req.Name})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return cs.GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category. Products referencing it keep existing
// with their category_id set to null by the schema's ON DELETE SET NULL.
func (cs *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (cs *CategoryService) ensureNameAvailable(ctx context.Context, name string, excludeId uuid.UUID) error {
	taken, err := cs.names.Taken(ctx, name, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("category with name %q already exists: %w", name, lib.ErrConflict)
	}
	return nil
}
