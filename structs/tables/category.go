package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName struct{}  `bun:"table:categories,alias:c"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	// Unique case-insensitively; enforced by a lower(name) unique index,
	// the ILIKE pre-check only exists for a friendlier 409.
	Name      string    `json:"name" bun:"name,notnull,unique"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}
