package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/database"
)

// postgresRepository is the concrete post.Repository backed by
// Postgres.
type postgresRepository struct {
	pool database.PgxPool
}

// NewPostgresRepository returns a Postgres-backed post repository.
func NewPostgresRepository(pool database.PgxPool) post.Repository {
	return &postgresRepository{pool: pool}
}

// Read queries join the owner so responses can embed the author
// summary without a second round trip.
const postSelect = `
	SELECT p.id, p.title, p.content, p.user_id, p.date_posted,
	       u.username, u.image_file
	FROM posts p
	JOIN users u ON u.id = p.user_id`

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	var author post.Author
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.UserID,
		&p.DatePosted,
		&author.Username,
		&author.ImageFile,
	)
	if err != nil {
		return nil, err
	}
	author.ID = p.UserID
	p.Author = &author
	return &p, nil
}

func ownerExists(ctx context.Context, tx pgx.Tx, userID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check owner exists: %w", err)
	}
	return exists, nil
}

// Create checks the owner and inserts in one transaction. When the
// owner is missing nothing is persisted.
func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*post.Post, error) {
		exists, err := ownerExists(ctx, tx, p.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, post.ErrOwnerNotFound
		}

		p.DatePosted = time.Now()
		err = tx.QueryRow(ctx,
			`INSERT INTO posts (title, content, user_id, date_posted)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			p.Title, p.Content, p.UserID, p.DatePosted,
		).Scan(&p.ID)
		if err != nil {
			return nil, fmt.Errorf("insert post: %w", err)
		}

		// Reload through the join so the response embeds the author,
		// same as every other read path.
		return loadWithAuthor(ctx, tx, p.ID)
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	row := r.pool.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id)

	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ListByUser requires the user to exist, then returns their posts
// most recent first.
func (r *postgresRepository) ListByUser(ctx context.Context, userID int64) ([]post.Post, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check owner exists: %w", err)
	}
	if !exists {
		return nil, post.ErrOwnerNotFound
	}

	rows, err := r.pool.Query(ctx,
		postSelect+` WHERE p.user_id = $1 ORDER BY p.date_posted DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts by user: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows pgx.Rows) ([]post.Post, error) {
	posts := []post.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// UpdateFull replaces all three fields. The new owner is re-validated
// inside the transaction only when it differs from the current one,
// mirroring the create-time check.
func (r *postgresRepository) UpdateFull(ctx context.Context, id int64, req post.CreatePostRequest) (*post.Post, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*post.Post, error) {
		var currentOwner int64
		var datePosted time.Time
		err := tx.QueryRow(ctx,
			`SELECT user_id, date_posted FROM posts WHERE id = $1 FOR UPDATE`, id,
		).Scan(&currentOwner, &datePosted)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load post for update: %w", err)
		}

		if req.UserID != currentOwner {
			exists, err := ownerExists(ctx, tx, req.UserID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, post.ErrOwnerNotFound
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE posts SET title = $2, content = $3, user_id = $4 WHERE id = $1`,
			id, req.Title, req.Content, req.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}

		return loadWithAuthor(ctx, tx, id)
	})
}

// UpdatePartial applies the supplied fields only; absent fields keep
// their current values.
func (r *postgresRepository) UpdatePartial(ctx context.Context, id int64, req post.UpdatePostRequest) (*post.Post, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*post.Post, error) {
		var title, content string
		err := tx.QueryRow(ctx,
			`SELECT title, content FROM posts WHERE id = $1 FOR UPDATE`, id,
		).Scan(&title, &content)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load post for update: %w", err)
		}

		if req.Title != nil {
			title = *req.Title
		}
		if req.Content != nil {
			content = *req.Content
		}

		_, err = tx.Exec(ctx,
			`UPDATE posts SET title = $2, content = $3 WHERE id = $1`,
			id, title, content,
		)
		if err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}

		return loadWithAuthor(ctx, tx, id)
	})
}

// Delete targets the post explicitly by id; zero affected rows means
// it did not exist.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func loadWithAuthor(ctx context.Context, tx pgx.Tx, id int64) (*post.Post, error) {
	row := tx.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	return p, nil
}
