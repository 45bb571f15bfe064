// Package entry implements the entry store using PostgreSQL.
//
// Every operation on an existing entry takes the owner's user_id as a
// mandatory predicate alongside the entry id, so a row owned by another
// user is indistinguishable from a missing row.
package entry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/journal-backend/internal/adapter/postgres"
	"github.com/akarpov/journal-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entriesTable = "entries"

var entryColumns = []string{"id", "user_id", "work", "struggle", "intention", "created_at", "updated_at"}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new entry. The entry_day column is derived from
// created_at (UTC); the UNIQUE (user_id, entry_day) constraint serializes
// concurrent same-day creations and the loser gets domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) error {
	query, args, err := qb.Insert(entriesTable).
		Columns("id", "user_id", "work", "struggle", "intention", "entry_day", "created_at", "updated_at").
		Values(e.ID, e.UserID, e.Work, e.Struggle, e.Intention, e.Day(), e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "entry", e.ID)
	}
	return nil
}

// ListByUser returns all entries owned by userID, newest first.
// An empty result is a valid non-error outcome.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error) {
	query, args, err := qb.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Work, &e.Struggle, &e.Intention, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}

	return entries, nil
}

// GetByID returns the entry with entryID owned by userID.
// Returns domain.ErrNotFound if the entry is absent or owned by another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	query, args, err := qb.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var e domain.Entry
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.UserID, &e.Work, &e.Struggle, &e.Intention, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}
	return &e, nil
}

// Update replaces the mutable fields of an entry, scoped to its owner.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) error {
	query, args, err := qb.Update(entriesTable).
		Set("work", e.Work).
		Set("struggle", e.Struggle).
		Set("intention", e.Intention).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID, "user_id": e.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", e.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an entry, scoped to its owner.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	query, args, err := qb.Delete(entriesTable).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}
