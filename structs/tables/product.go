package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	tableName  struct{}        `bun:"table:products,alias:p"`
	Id         uuid.UUID       `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name       string          `json:"name" bun:"name,notnull"`
	Price      decimal.Decimal `json:"price" bun:"price,notnull,type:numeric(10,2)"`
	CategoryId *uuid.UUID      `json:"category_id,omitempty" bun:"category_id,type:uuid"`
	CreatedAt  time.Time       `json:"created_at" bun:"created_at,notnull,default:now()"`

	Category *Category `json:"category,omitempty" bun:"rel:belongs-to,join:category_id=id"`
}
