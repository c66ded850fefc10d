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

// ProductService manages the product catalog with a Redis read-through cache
// on single-product lookups.
type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
	cache  *CacheService
	config *structs.CacheConfig
	names  NameIndex
}

func NewProductService(logger *gecho.Logger, db *database.DB, cache *CacheService, cfg *structs.CacheConfig, names NameIndex) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
		cache:  cache,
		config: cfg,
		names:  names,
	}
}

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

// GetAllProducts returns the catalog with categories joined, newest first.
func (ps *ProductService) GetAllProducts(ctx context.Context) ([]tables.Product, error) {
	return database.Query[tables.Product](ps.db).
		Relation("Category").
		OrderBy("created_at", database.DESC).
		All(ctx)
}

// GetProductByID fetches a single product, serving from cache when possible.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	var cached tables.Product
	if ps.cache.Get(ctx, productCacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Category").
		First(ctx)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	ps.cache.Set(ctx, productCacheKey(id), product, ps.config.ProductTTL)

	return product, nil
}

// FindByIDs resolves products by primary key for order pricing. Missing ids
// are simply absent from the result; the caller decides what that means.
func (ps *ProductService) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return database.Query[tables.Product](ps.db).
		WhereIn("id", ids).
		All(ctx)
}

// CreateProduct inserts a product after checking the name is not already
// taken. The check is case-insensitive to match the unique index on
// lower(name), which remains the authoritative guard.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.CreateProductRequest) (*tables.Product, error) {
	if !req.Price.IsPositive() {
		return nil, lib.NewValidationError("price", "price must be greater than 0")
	}
	if err := ps.ensureNameAvailable(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	product := &tables.Product{
		Name:       req.Name,
		Price:      req.Price,
		CategoryId: req.CategoryId,
	}

	created, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.logger.Info("Product created", gecho.Field("product_id", created.Id), gecho.Field("name", created.Name))

	return created, nil
}

// UpdateProduct applies a partial update. Absent fields are left untouched;
// an explicit null category_id clears the category.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	updates := map[string]any{}

	if req.Name != nil {
		if err := ps.ensureNameAvailable(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, lib.NewValidationError("price", "price must be greater than 0")
		}
		updates["price"] = *req.Price
	}
	if req.CategorySet {
		updates["category_id"] = req.CategoryId
	}

	if len(updates) == 0 {
		return ps.GetProductByID(ctx, id)
	}

	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	ps.cache.Delete(ctx, productCacheKey(id))

	return ps.GetProductByID(ctx, id)
}

// DeleteProduct removes a product and evicts it from the cache.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	ps.cache.Delete(ctx, productCacheKey(id))

	return nil
}

func (ps *ProductService) ensureNameAvailable(ctx context.Context, name string, excludeId uuid.UUID) error {
	taken, err := ps.names.Taken(ctx, name, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("product with name %q already exists: %w", name, lib.ErrConflict)
	}
	return nil
}
