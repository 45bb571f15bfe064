package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// UpdateEntry applies a partial update to an entry owned by the
// authenticated user. Each non-blank input field overwrites the stored
// value; blank fields are left unchanged (merge, not replace). UpdatedAt is
// set to now regardless of which fields changed.
func (s *Service) UpdateEntry(ctx context.Context, entryID uuid.UUID, input UpdateEntryInput) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	if strings.TrimSpace(input.Work) != "" {
		entry.Work = input.Work
	}
	if strings.TrimSpace(input.Struggle) != "" {
		entry.Struggle = input.Struggle
	}
	if strings.TrimSpace(input.Intention) != "" {
		entry.Intention = input.Intention
	}

	now := time.Now().UTC()
	entry.UpdatedAt = &now

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return entry, nil
}
