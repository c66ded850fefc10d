package tables

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription stores one browser push endpoint with the keys needed to
// encrypt payloads to it. At most one row exists per user: registering a new
// subscription deletes every prior row for that user first.
type PushSubscription struct {
	tableName struct{}  `bun:"table:push_subscriptions,alias:ps"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Endpoint  string    `json:"endpoint" bun:"endpoint,notnull,unique"`
	P256dh    string    `json:"p256dh" bun:"p256dh,notnull"`
	Auth      string    `json:"auth" bun:"auth,notnull"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,notnull,type:uuid"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}
