package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}

// PricedItem is a validated line item carrying the unit price captured from
// the product at pricing time.
type PricedItem struct {
	ProductId uuid.UUID
	Quantity  int
	ItemPrice decimal.Decimal
}

// PricedOrder is the result of pricing a request against current product
// prices; Total is the sum of ItemPrice * Quantity over Items.
type PricedOrder struct {
	Total decimal.Decimal
	Items []PricedItem
}
