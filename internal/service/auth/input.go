package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/akarpov/journal-backend/internal/domain"
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors. Password strength is
// a separate policy applied by Register after the username is known to be
// free, matching the order in which failures are reported.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	// Bounds are in characters, not bytes.
	if n := utf8.RuneCountInString(username); n < domain.UsernameMinLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 2 characters"})
	} else if n > domain.UsernameMaxLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 25 characters"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
