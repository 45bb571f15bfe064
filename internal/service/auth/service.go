// Package auth implements registration, login, and bearer token resolution.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
)

// userRepo defines the credential store interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// tokenManager defines the token operations needed by the auth service.
type tokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	Resolve(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenManager
	hashCost int
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenManager, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		tokens:   tokens,
		hashCost: hashCost,
	}
}

// ResolveToken verifies a bearer token and returns the user ID it carries.
// Any verification failure surfaces as domain.ErrUnauthorized.
func (s *Service) ResolveToken(_ context.Context, token string) (uuid.UUID, error) {
	return s.tokens.Resolve(token)
}
