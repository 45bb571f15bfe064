// Package journal implements the entry lifecycle: create, list, get,
// update, and delete, always scoped to the authenticated owner.
package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
)

// entryRepo defines the entry store interface needed by the journal service.
// Every operation on an existing entry takes the owner's user ID; the store
// must treat a foreign entry as not found.
type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) error
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// Service provides journal entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new journal service.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
	}
}
