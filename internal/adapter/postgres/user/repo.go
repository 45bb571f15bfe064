// Package user implements the credential store using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/journal-backend/internal/adapter/postgres"
	"github.com/akarpov/journal-backend/internal/domain"
)

// qb builds queries with $N placeholders for pgx.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const usersTable = "users"

var userColumns = []string{"id", "username", "password_hash", "disabled", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := r.scanUser(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := r.scanUser(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user. A username collision surfaces as
// domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	query, args, err := qb.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Username, u.PasswordHash, u.Disabled, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

func (r *Repo) scanUser(ctx context.Context, query string, args []any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Disabled, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
