package services

import (
	"context"
	"fmt"

	"comanda_server/database"
	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type UserService struct {
	logger *gecho.Logger
	db     *database.DB
	names  NameIndex
}

func NewUserService(logger *gecho.Logger, db *database.DB, names NameIndex) *UserService {
	return &UserService{
		logger: logger,
		db:     db,
		names:  names,
	}
}

// GetAllUsers returns all users newest first, without password hashes.
func (us *UserService) GetAllUsers(ctx context.Context) ([]*tables.PublicUser, error) {
	users, err := database.Query[tables.User](us.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]*tables.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

func (us *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*tables.PublicUser, error) {
	user, err := database.FindByID[tables.User](ctx, us.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	return user.Public(), nil
}

// CreateUser hashes the password and inserts the user. The role defaults to
// waiter when the request leaves it out.
func (us *UserService) CreateUser(ctx context.Context, req *structs.CreateUserRequest) (*tables.PublicUser, error) {
	if err := us.ensureUsernameAvailable(ctx, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := lib.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := tables.RoleWaiter
	if req.Role != "" {
		role = tables.UserRole(req.Role)
	}

	user := &tables.User{
		Username: req.Username,
		Password: hash,
		Role:     role,
	}

	created, err := database.Query[tables.User](us.db).Insert(ctx, user)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	us.logger.Info("User created", gecho.Field("user_id", created.Id), gecho.Field("username", created.Username))

	return created.Public(), nil
}

// UpdateUser applies a partial update; nil fields are left untouched. A new
// password is re-hashed before storage.
func (us *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *structs.UpdateUserRequest) (*tables.PublicUser, error) {
	updates := map[string]any{}

	if req.Username != nil {
		if err := us.ensureUsernameAvailable(ctx, *req.Username, id); err != nil {
			return nil, err
		}
		updates["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := lib.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = hash
	}
	if req.Role != nil {
		updates["role"] = tables.UserRole(*req.Role)
	}

	if len(updates) == 0 {
		return us.GetUserByID(ctx, id)
	}

	rows, err := database.Query[tables.User](us.db).
		Where("id", id).
		Update(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return us.GetUserByID(ctx, id)
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.User](us.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (us *UserService) ensureUsernameAvailable(ctx context.Context, username string, excludeId uuid.UUID) error {
	taken, err := us.names.Taken(ctx, username, excludeId)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("username %q is already taken: %w", username, lib.ErrConflict)
	}
	return nil
}
