package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	authx "github.com/akarpov/journal-backend/internal/auth"
	"github.com/akarpov/journal-backend/internal/domain"
)

// Login authenticates a user with username + password and issues a bearer
// token. An unknown username and a wrong password both return
// domain.ErrUnauthorized so the caller cannot enumerate usernames.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !authx.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
	)

	return &AuthResult{AccessToken: token, User: user}, nil
}
