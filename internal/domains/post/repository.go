package post

import "context"

// Repository is the data access contract for posts. Owner validation
// and the mutation it guards always run inside one transaction.
type Repository interface {
	// Create validates the owner exists before inserting; a missing
	// owner returns ErrOwnerNotFound and persists nothing.
	Create(ctx context.Context, p *Post) (*Post, error)

	FindByID(ctx context.Context, id int64) (*Post, error)

	// List returns every post; ordering is unspecified.
	List(ctx context.Context) ([]Post, error)

	// ListByUser returns ErrOwnerNotFound when the user does not
	// exist; results are ordered most recent first.
	ListByUser(ctx context.Context, userID int64) ([]Post, error)

	// UpdateFull replaces title, content and owner. A changed owner
	// is re-validated before the write commits.
	UpdateFull(ctx context.Context, id int64, req CreatePostRequest) (*Post, error)

	// UpdatePartial applies only the fields present in req.
	UpdatePartial(ctx context.Context, id int64, req UpdatePostRequest) (*Post, error)

	// Delete removes an explicitly identified post.
	Delete(ctx context.Context, id int64) error
}
