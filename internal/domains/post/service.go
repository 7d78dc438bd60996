package post

import "context"

// Service is the business logic contract for the post domain.
type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (*PostDTO, error)
	Get(ctx context.Context, id int64) (*PostDTO, error)
	List(ctx context.Context) ([]PostDTO, error)
	ListByUser(ctx context.Context, userID int64) ([]PostDTO, error)
	UpdateFull(ctx context.Context, id int64, req CreatePostRequest) (*PostDTO, error)
	UpdatePartial(ctx context.Context, id int64, req UpdatePostRequest) (*PostDTO, error)
	Delete(ctx context.Context, id int64) error
}
