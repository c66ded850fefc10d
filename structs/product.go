package structs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	CategoryId *uuid.UUID      `json:"category_id"`
}

// UpdateProductRequest carries partial updates. CategorySet distinguishes
// "leave category unchanged" from "clear the category": a request body with
// "category_id": null clears it, an absent key leaves it alone.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	CategoryId  *uuid.UUID       `json:"category_id"`
	CategorySet bool             `json:"-"`
}

func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateProductRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	_, a.CategorySet = probe["category_id"]

	*r = UpdateProductRequest(a)
	return nil
}
