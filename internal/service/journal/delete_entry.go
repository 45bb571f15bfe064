package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// DeleteEntry removes an entry owned by the authenticated user. Deleting an
// entry that does not exist, or that belongs to someone else, returns
// domain.ErrNotFound.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}
