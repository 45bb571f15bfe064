package auth

import "github.com/akarpov/journal-backend/internal/domain"

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
