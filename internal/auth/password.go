package auth

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/akarpov/journal-backend/internal/domain"
)

// CheckPasswordStrength accepts a password only if it is longer than 8
// characters and contains at least one lowercase letter, one uppercase
// letter, one digit, and one symbol (anything outside [A-Za-z0-9]).
// Every failure returns the same domain.WeakPasswordMessage.
func CheckPasswordStrength(password string) error {
	var hasLower, hasUpper, hasDigit, hasSymbol bool

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	// Length is counted in characters, not bytes.
	if utf8.RuneCountInString(password) > 8 && hasLower && hasUpper && hasDigit && hasSymbol {
		return nil
	}
	return fmt.Errorf("%s: %w", domain.WeakPasswordMessage, domain.ErrWeakPassword)
}

// HashPassword computes a salted bcrypt hash at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// bcrypt's comparison runs in time independent of where a mismatch occurs.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
