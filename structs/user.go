package structs

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=4,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin waiter"`
}

// UpdateUserRequest carries partial updates; nil means "leave unchanged".
// Only admins may set Role, enforced in the handler.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=4,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin waiter"`
}
