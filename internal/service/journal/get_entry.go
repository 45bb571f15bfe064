package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// GetEntry returns a single entry by ID, scoped to the authenticated user.
// An entry that does not exist and an entry owned by another user are the
// same domain.ErrNotFound.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}
