package journal

import (
	"strings"
	"unicode/utf8"

	"github.com/akarpov/journal-backend/internal/domain"
)

// CreateEntryInput holds the parameters for creating an entry.
// All three fields are required at creation.
type CreateEntryInput struct {
	Work      string
	Struggle  string
	Intention string
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	errs = appendFieldErrors(errs, "work", i.Work, true)
	errs = appendFieldErrors(errs, "struggle", i.Struggle, true)
	errs = appendFieldErrors(errs, "intention", i.Intention, true)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for a partial update. Blank fields
// are no-ops: only non-blank values overwrite the stored entry.
type UpdateEntryInput struct {
	Work      string
	Struggle  string
	Intention string
}

// Validate checks length bounds on the supplied fields. Blank fields are
// always accepted since they leave the entry unchanged.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	errs = appendFieldErrors(errs, "work", i.Work, false)
	errs = appendFieldErrors(errs, "struggle", i.Struggle, false)
	errs = appendFieldErrors(errs, "intention", i.Intention, false)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendFieldErrors(errs []domain.FieldError, field, value string, required bool) []domain.FieldError {
	if required && strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	// The bound is in characters, not bytes.
	if utf8.RuneCountInString(value) > domain.EntryFieldMaxLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 256 characters"})
	}
	return errs
}
