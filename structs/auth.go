package structs

import (
	"time"

	"comanda_server/structs/tables"

	"github.com/google/uuid"
)

type AuthClaims struct {
	Sub      uuid.UUID `json:"sub"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Iat      time.Time `json:"iat"`
	Exp      time.Time `json:"exp"`
	Jti      uuid.UUID `json:"jti"`
}

func (c *AuthClaims) IsAdmin() bool {
	return c.Role == string(tables.RoleAdmin)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  *tables.PublicUser `json:"user"`
}
