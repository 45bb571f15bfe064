package entry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/journal-backend/internal/adapter/postgres/entry"
	"github.com/akarpov/journal-backend/internal/adapter/postgres/testhelper"
	"github.com/akarpov/journal-backend/internal/adapter/postgres/user"
	"github.com/akarpov/journal-backend/internal/domain"
)

// newRepo sets up the DB and returns a ready entry Repo and its pool.
func newRepo(t *testing.T) (*entry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return entry.New(pool), pool
}

// createUser inserts a user row to satisfy the entries FK.
func createUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	u := &domain.User{
		ID:           uuid.New(),
		Username:     "owner-" + uuid.New().String()[:8],
		PasswordHash: "$2a$04$fakehashfakehashfakehashfakehash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := user.New(pool).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

// testEntry returns an entry for the given owner created at the given time.
func testEntry(userID uuid.UUID, createdAt time.Time) *domain.Entry {
	return &domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Work:      "did things",
		Struggle:  "hard things",
		Intention: "better things",
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	e := testEntry(userID, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, userID, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Work != e.Work || got.Struggle != e.Struggle || got.Intention != e.Intention {
		t.Errorf("fields mismatch: %+v", got)
	}
	if got.UpdatedAt != nil {
		t.Error("updated_at should be NULL for a fresh entry")
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Errorf("created_at = %s, want %s", got.CreatedAt, e.CreatedAt)
	}
}

func TestRepo_Create_SameDayConflict(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	// Fixed midday timestamp so the second insert stays on the same UTC day.
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, testEntry(userID, day)); err != nil {
		t.Fatalf("Create first entry: %v", err)
	}

	err := repo.Create(ctx, testEntry(userID, day.Add(8*time.Hour)))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for same-day entry, got %v", err)
	}
}

func TestRepo_Create_SameDayDifferentUsers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	now := time.Now()
	if err := repo.Create(ctx, testEntry(createUser(t, pool), now)); err != nil {
		t.Fatalf("Create for first user: %v", err)
	}
	if err := repo.Create(ctx, testEntry(createUser(t, pool), now)); err != nil {
		t.Fatalf("same day must be allowed across users: %v", err)
	}
}

func TestRepo_Create_UnknownOwner(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	err := repo.Create(ctx, testEntry(uuid.New(), time.Now()))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for FK violation, got %v", err)
	}
}

func TestRepo_ListByUser_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	older := testEntry(userID, time.Now().Add(-48*time.Hour))
	newer := testEntry(userID, time.Now())
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create older: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create newer: %v", err)
	}

	entries, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != newer.ID || entries[1].ID != older.ID {
		t.Errorf("expected newest first, got [%s %s]", entries[0].ID, entries[1].ID)
	}
}

func TestRepo_ListByUser_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	entries, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(entries))
	}
}

func TestRepo_GetByID_ForeignOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := createUser(t, pool)
	stranger := createUser(t, pool)

	e := testEntry(owner, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.GetByID(ctx, stranger, e.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign entry must be ErrNotFound, got %v", err)
	}
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	e := testEntry(userID, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	e.Work = "rewrote things"
	e.UpdatedAt = &now

	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, userID, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Work != "rewrote things" {
		t.Errorf("work = %q, want updated value", got.Work)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(now) {
		t.Errorf("updated_at = %v, want %s", got.UpdatedAt, now)
	}
}

func TestRepo_Update_ForeignOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := createUser(t, pool)
	stranger := createUser(t, pool)

	e := testEntry(owner, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	hijacked := *e
	hijacked.UserID = stranger
	hijacked.Work = "hijacked"

	err := repo.Update(ctx, &hijacked)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign update must be ErrNotFound, got %v", err)
	}

	got, err := repo.GetByID(ctx, owner, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Work != e.Work {
		t.Error("foreign update must not modify the row")
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	e := testEntry(userID, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, userID, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, userID, e.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Second delete is a no-row match.
	if err := repo.Delete(ctx, userID, e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete_ForeignOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := createUser(t, pool)
	stranger := createUser(t, pool)

	e := testEntry(owner, time.Now())
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, stranger, e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign delete must be ErrNotFound, got %v", err)
	}

	if _, err := repo.GetByID(ctx, owner, e.ID); err != nil {
		t.Fatalf("entry should survive a foreign delete: %v", err)
	}
}
