// Package memory provides in-memory implementations of the credential and
// entry stores. It exists for tests: the services and transport layer run
// against it without a live database, with the same domain error semantics
// as the PostgreSQL adapter.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
)

// UserRepo is a mutex-guarded in-memory credential store.
type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserRepo creates an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]domain.User)}
}

// GetByID returns a user by primary key.
func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByUsername returns a user by username.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

// Create inserts a new user, enforcing id and username uniqueness.
func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; ok {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return fmt.Errorf("user %s: %w", u.Username, domain.ErrAlreadyExists)
		}
	}
	r.users[u.ID] = *u
	return nil
}

// EntryRepo is a mutex-guarded in-memory entry store. It enforces the same
// one-entry-per-user-per-day uniqueness as the entries table.
type EntryRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.Entry
}

// NewEntryRepo creates an empty in-memory entry repository.
func NewEntryRepo() *EntryRepo {
	return &EntryRepo{entries: make(map[uuid.UUID]domain.Entry)}
}

// Create inserts a new entry. A second entry for the same user on the same
// UTC calendar day returns domain.ErrConflict.
func (r *EntryRepo) Create(_ context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.ID]; ok {
		return fmt.Errorf("entry %s: %w", e.ID, domain.ErrAlreadyExists)
	}
	for _, existing := range r.entries {
		if existing.UserID == e.UserID && existing.Day().Equal(e.Day()) {
			return fmt.Errorf("entry %s: %w", e.ID, domain.ErrConflict)
		}
	}
	r.entries[e.ID] = *e
	return nil
}

// ListByUser returns the user's entries, newest first.
func (r *EntryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			entry := e
			entries = append(entries, &entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// GetByID returns the entry scoped to its owner; a foreign or missing
// entry is domain.ErrNotFound.
func (r *EntryRepo) GetByID(_ context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	entry := e
	return &entry, nil
}

// Update replaces a stored entry, scoped to its owner.
func (r *EntryRepo) Update(_ context.Context, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[e.ID]
	if !ok || existing.UserID != e.UserID {
		return fmt.Errorf("entry %s: %w", e.ID, domain.ErrNotFound)
	}
	r.entries[e.ID] = *e
	return nil
}

// Delete removes an entry, scoped to its owner.
func (r *EntryRepo) Delete(_ context.Context, userID, entryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	delete(r.entries, entryID)
	return nil
}
