package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFieldMaxLen is the maximum length of each free-text entry field.
const EntryFieldMaxLen = 256

// Entry is a single journal record owned by exactly one user.
// UpdatedAt stays nil until the first update.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Work      string
	Struggle  string
	Intention string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Day returns the UTC calendar day the entry belongs to. The store keys
// its one-entry-per-day uniqueness on this value.
func (e *Entry) Day() time.Time {
	return e.CreatedAt.UTC().Truncate(24 * time.Hour)
}

// EntrySummary is the list projection of an entry. Timestamps are
// intentionally omitted; the full view is returned only by single-entry
// fetch.
type EntrySummary struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Work      string
	Struggle  string
	Intention string
}

// Summary returns the list projection of the entry.
func (e *Entry) Summary() EntrySummary {
	return EntrySummary{
		ID:        e.ID,
		UserID:    e.UserID,
		Work:      e.Work,
		Struggle:  e.Struggle,
		Intention: e.Intention,
	}
}
