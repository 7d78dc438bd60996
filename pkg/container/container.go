package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/password"
	"blog-backend/pkg/token"

	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton for the application lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	Hasher *password.Hasher
	Tokens *token.Manager

	UserRepo user.Repository
	PostRepo post.Repository

	UserService user.Service
	PostService post.Service

	UserHandler *userHandler.UserHandler
	PostHandler *postHandler.PostHandler
}

// NewContainer builds the full graph: config, database, leaf services,
// repositories, services, handlers. Any failure aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Hasher: password.NewHasher(),
		Tokens: token.NewManager(
			cfg.JWT.Secret,
			time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		),
	}

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.Hasher, c.Tokens)
	c.PostService = postService.NewPostService(c.PostRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.PostService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	return c, nil
}

// Cleanup releases held resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
