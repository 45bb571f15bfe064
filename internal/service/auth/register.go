package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	authx "github.com/akarpov/journal-backend/internal/auth"
	"github.com/akarpov/journal-backend/internal/domain"
)

// Register creates a new user with username + password credentials and
// returns the fresh user ID.
//
// Returns domain.ErrAlreadyExists if the username is taken,
// domain.ErrWeakPassword if the password fails the strength policy. The
// weak-password check runs before any record is persisted, so a rejected
// registration leaves no trace.
func (s *Service) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	// Username availability is checked at the application level; the unique
	// constraint below remains the backstop for registration races.
	_, err := s.users.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return uuid.Nil, fmt.Errorf("auth.Register: username %s: %w", input.Username, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return uuid.Nil, fmt.Errorf("auth.Register lookup username: %w", err)
	}

	if err := authx.CheckPasswordStrength(input.Password); err != nil {
		return uuid.Nil, err
	}

	hash, err := authx.HashPassword(input.Password, s.hashCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.Register: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
		Disabled:     false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return uuid.Nil, fmt.Errorf("auth.Register: username %s: %w", input.Username, domain.ErrAlreadyExists)
		}
		return uuid.Nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return user.ID, nil
}
