package services

import (
	"context"
	"fmt"
	"time"

	"comanda_server/database"
	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	logger *gecho.Logger
	config *structs.AuthConfig
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, cfg *structs.AuthConfig, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		config: cfg,
		db:     db,
	}
}

// Login verifies the credentials and returns a signed access token with the
// public user. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*structs.LoginResponse, error) {
	user, err := database.Query[tables.User](as.db).
		Where("username", req.Username).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		as.logger.Warn("Failed login attempt", gecho.Field("username", req.Username))
		return nil, lib.ErrInvalidCredentials
	}

	token, err := as.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	as.logger.Info("User logged in", gecho.Field("user_id", user.Id), gecho.Field("username", user.Username))

	return &structs.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// GenerateAccessToken signs an HS256 JWT carrying the user's identity and
// role.
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      user.Id.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(as.config.TokenExpiry).Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.config.TokenSecret))
}
