package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")

	// ErrOwnerNotFound means the user a post references (or would
	// reference) does not exist.
	ErrOwnerNotFound = errors.New("user not found")
)
