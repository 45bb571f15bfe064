package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash never leaves the auth layer;
// transport projections must not include it.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
}

// Username length bounds applied at registration.
const (
	UsernameMinLen = 2
	UsernameMaxLen = 25
)
