package auth

import (
	"context"
	"fmt"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// CurrentUser returns the profile of the authenticated user. The caller's
// identity is taken from the request context.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}

	return user, nil
}
