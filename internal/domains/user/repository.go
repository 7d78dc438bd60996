package user

import "context"

// Repository is the data access contract for users. Implementations
// must run every read-then-write sequence (uniqueness checks, cascade
// delete) inside a single transaction so concurrent requests cannot
// slip past the checks.
type Repository interface {
	// Create inserts a new user. The username check runs before the
	// email check, so when both collide the reported error is
	// ErrUsernameTaken. Email uniqueness is case-insensitive.
	Create(ctx context.Context, u *User) (*User, error)

	// FindByID returns ErrUserNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail matches case-insensitively; used for login.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update applies only the fields present in req. Changed username
	// or email is re-checked for uniqueness excluding the row itself.
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)

	// Delete removes the user and all posts they own atomically.
	Delete(ctx context.Context, id int64) error
}
