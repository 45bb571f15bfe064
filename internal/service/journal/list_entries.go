package journal

import (
	"context"
	"fmt"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// ListEntries returns summaries of the authenticated user's entries, newest
// first. The summary projection omits timestamps; the full view is served
// only by GetEntry. An empty journal is a valid, non-error result.
func (s *Service) ListEntries(ctx context.Context) ([]domain.EntrySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	summaries := make([]domain.EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = e.Summary()
	}

	return summaries, nil
}
