package user

import "context"

// Service is the business logic contract for the user domain,
// including the authentication flow.
type Service interface {
	// Authentication
	Register(ctx context.Context, req CreateUserRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	// CurrentUser resolves a bearer token to the user it names.
	// Every failure mode is ErrUnauthorized.
	CurrentUser(ctx context.Context, tokenString string) (*UserDTO, error)

	// Profile CRUD
	Get(ctx context.Context, id int64) (*UserDTO, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, id int64) error
}
