package services

import (
	"context"
	"fmt"

	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFinder resolves product rows for pricing. ProductService is the
// production implementation; tests substitute their own.
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error)
}

// PriceOrder validates the requested items and prices them against current
// product prices. Validation runs before any product lookup so a malformed
// request never touches the database. The unit price is captured per item;
// later product price changes do not affect it.
func PriceOrder(ctx context.Context, finder ProductFinder, items []structs.OrderItemRequest) (*structs.PricedOrder, error) {
	if len(items) == 0 {
		return nil, lib.NewValidationError("items", "order must contain at least one item")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for i, item := range items {
		if item.ProductId == uuid.Nil {
			return nil, lib.NewValidationError(fmt.Sprintf("items[%d].product_id", i), "product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, lib.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "quantity must be greater than 0")
		}
		ids = append(ids, item.ProductId)
	}

	products, err := finder.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for pricing: %w", err)
	}

	priceById := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, p := range products {
		priceById[p.Id] = p.Price
	}

	priced := &structs.PricedOrder{
		Total: decimal.Zero,
		Items: make([]structs.PricedItem, 0, len(items)),
	}

	for _, item := range items {
		price, ok := priceById[item.ProductId]
		if !ok {
			return nil, &lib.ProductNotFoundError{ProductId: item.ProductId.String()}
		}

		priced.Items = append(priced.Items, structs.PricedItem{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			ItemPrice: price,
		})
		priced.Total = priced.Total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return priced, nil
}
