package user

import "errors"

// DuplicateError reports a uniqueness violation on a named field so
// the HTTP layer can surface which field conflicted.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already exists"
}

// Shared instances so callers can match with errors.Is.
var (
	ErrUsernameTaken = &DuplicateError{Field: "username"}
	ErrEmailTaken    = &DuplicateError{Field: "email"}
)

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Service-level (business logic) errors
var (
	// ErrInvalidCredentials covers unknown email and wrong password
	// alike, so login can not be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthorized covers every token failure: invalid signature,
	// expired, malformed subject, or a subject that no longer exists.
	ErrUnauthorized = errors.New("invalid or expired token")
)
