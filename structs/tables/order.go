package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	// Always equal to the sum of item_price * quantity over the items.
	Total     decimal.Decimal `json:"total" bun:"total,notnull,type:numeric(10,2)"`
	Status    OrderStatus     `json:"status" bun:"status,notnull,default:'open'"`
	CreatedAt time.Time       `json:"created_at" bun:"created_at,notnull,default:now()"`

	Items []*OrderItem `json:"order_items,omitempty" bun:"rel:has-many,join:id=order_id"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	OrderId   uuid.UUID `json:"order_id" bun:"order_id,notnull,type:uuid"`
	ProductId uuid.UUID `json:"product_id" bun:"product_id,notnull,type:uuid"`
	Quantity  int       `json:"quantity" bun:"quantity,notnull"`
	// Unit price captured at order-creation time; immutable afterwards,
	// deliberately decoupled from later product price changes.
	ItemPrice decimal.Decimal `json:"item_price" bun:"item_price,notnull,type:numeric(10,2)"`

	Product *Product `json:"products,omitempty" bun:"rel:belongs-to,join:product_id=id"`
}
