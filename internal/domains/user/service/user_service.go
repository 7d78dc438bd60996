package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/password"
	"blog-backend/pkg/token"
)

// userService implements user.Service.
type userService struct {
	repo   user.Repository
	hasher *password.Hasher
	tokens *token.Manager
}

// NewUserService wires the user business logic. All collaborators are
// constructor-injected.
func NewUserService(repo user.Repository, hasher *password.Hasher, tokens *token.Manager) user.Service {
	return &userService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account. The plaintext password is hashed
// here and never reaches the repository.
func (s *userService) Register(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

// Login authenticates by case-insensitive email and password. An
// unknown email and a wrong password produce the identical
// ErrInvalidCredentials, so the endpoint cannot be used to probe
// which emails are registered.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(strconv.FormatInt(u.ID, 10))
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// CurrentUser resolves a bearer token to its user. Invalid signature,
// expired token, non-integer subject and unknown user id all collapse
// into ErrUnauthorized; the boundary leaks nothing about which check
// failed.
func (s *userService) CurrentUser(ctx context.Context, tokenString string) (*user.UserDTO, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, user.ErrUnauthorized
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, user.ErrUnauthorized
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrUnauthorized
		}
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

// Delete removes the account and cascades to its posts; the
// repository guarantees atomicity.
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
