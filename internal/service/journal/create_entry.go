package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// CreateEntry creates a new entry for the authenticated user and returns it.
// The store's one-entry-per-day uniqueness surfaces as domain.ErrConflict;
// the service performs no in-process coordination because concurrent
// requests may run on different nodes.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Work:      input.Work,
		Struggle:  input.Struggle,
		Intention: input.Intention,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: nil,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}
