package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/database"
)

// postgresRepository is the concrete user.Repository backed by
// Postgres. It is private; callers depend on the interface.
type postgresRepository struct {
	pool database.PgxPool
}

// NewPostgresRepository returns a Postgres-backed user repository.
func NewPostgresRepository(pool database.PgxPool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, image_file, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.ImageFile,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The username and case-folded email
// pre-checks and the insert run in one transaction, so two concurrent
// registrations with the same username cannot both pass. A unique
// index violation slipping through is mapped to the same domain
// errors as a backstop.
func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*user.User, error) {
		// Username check always runs first: when both fields collide
		// the reported conflict is the username.
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
			u.Username,
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check username exists: %w", err)
		}
		if exists {
			return nil, user.ErrUsernameTaken
		}

		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`,
			u.Email,
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check email exists: %w", err)
		}
		if exists {
			return nil, user.ErrEmailTaken
		}

		now := time.Now()
		u.CreatedAt = now
		u.UpdatedAt = now

		err = tx.QueryRow(ctx,
			`INSERT INTO users (username, email, password_hash, image_file, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			u.Username, u.Email, u.PasswordHash, u.ImageFile, u.CreatedAt, u.UpdatedAt,
		).Scan(&u.ID)
		if err != nil {
			if mapped := mapUniqueViolation(err); mapped != nil {
				return nil, mapped
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}

		return u, nil
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail matches case-insensitively; this is the login lookup.
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Update applies a partial update. The row is locked for the duration
// of the transaction so the uniqueness re-checks and the write are
// atomic.
func (r *postgresRepository) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (*user.User, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*user.User, error) {
		row := tx.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
		u, err := scanUser(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load user for update: %w", err)
		}

		// Re-check uniqueness only for fields that actually change,
		// excluding the row being updated.
		if req.Username != nil && *req.Username != u.Username {
			var exists bool
			err = tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
				*req.Username, id,
			).Scan(&exists)
			if err != nil {
				return nil, fmt.Errorf("check username exists: %w", err)
			}
			if exists {
				return nil, user.ErrUsernameTaken
			}
			u.Username = *req.Username
		}

		if req.Email != nil && !strings.EqualFold(*req.Email, u.Email) {
			var exists bool
			err = tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1) AND id <> $2)`,
				*req.Email, id,
			).Scan(&exists)
			if err != nil {
				return nil, fmt.Errorf("check email exists: %w", err)
			}
			if exists {
				return nil, user.ErrEmailTaken
			}
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.ImageFile != nil {
			u.ImageFile = req.ImageFile
		}

		u.UpdatedAt = time.Now()
		_, err = tx.Exec(ctx,
			`UPDATE users SET username = $2, email = $3, image_file = $4, updated_at = $5 WHERE id = $1`,
			u.ID, u.Username, u.Email, u.ImageFile, u.UpdatedAt,
		)
		if err != nil {
			if mapped := mapUniqueViolation(err); mapped != nil {
				return nil, mapped
			}
			return nil, fmt.Errorf("update user: %w", err)
		}

		return u, nil
	})
}

// Delete removes the user and every post they own in one transaction.
// A partially applied cascade is never observable: any failure rolls
// the whole thing back.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete user posts: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
}

// mapUniqueViolation translates a 23505 raised by the unique indexes
// into the matching domain error, or returns nil for anything else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !database.IsUniqueViolation(err) {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") || strings.Contains(pgErr.Message, "email") {
		return user.ErrEmailTaken
	}
	return user.ErrUsernameTaken
}
