package service

import (
	"context"

	"blog-backend/internal/domains/post"
)

// postService implements post.Service. It is thin: validation, DTO
// mapping and delegation; the transactional invariants live in the
// repository.
type postService struct {
	repo post.Repository
}

// NewPostService wires the post business logic.
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest) (*post.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &post.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*post.PostDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) List(ctx context.Context) ([]post.PostDTO, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *postService) ListByUser(ctx context.Context, userID int64) ([]post.PostDTO, error) {
	posts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *postService) UpdateFull(ctx context.Context, id int64, req post.CreatePostRequest) (*post.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateFull(ctx, id, req)
	if err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) UpdatePartial(ctx context.Context, id int64, req post.UpdatePostRequest) (*post.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdatePartial(ctx, id, req)
	if err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func toDTOs(posts []post.Post) []post.PostDTO {
	dtos := make([]post.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].ToDTO())
	}
	return dtos
}
