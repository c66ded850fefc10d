package tables

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleWaiter UserRole = "waiter"
)

type User struct {
	tableName struct{}  `bun:"table:users,alias:u"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username  string    `json:"username" bun:"username,unique,notnull"`
	// Bcrypt hash, never serialized
	Password  string    `json:"-" bun:"password,notnull"`
	Role      UserRole  `json:"role" bun:"role,notnull,default:'waiter'"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

// PublicUser is the representation returned by the API; it never carries
// the password hash even transiently.
type PublicUser struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		Id:        u.Id,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
