package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// supportedAlgorithms lists the token signing algorithms the server accepts.
var supportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.Secret) < 32 {
		return fmt.Errorf("auth.secret must be at least 32 characters (got %d)", len(c.Auth.Secret))
	}

	if !slices.Contains(supportedAlgorithms, c.Auth.Algorithm) {
		return fmt.Errorf("auth.algorithm must be one of %v (got %q)", supportedAlgorithms, c.Auth.Algorithm)
	}

	if c.Auth.TokenExpireMinutes <= 0 {
		return fmt.Errorf("auth.token_expire_minutes must be > 0 (got %d)", c.Auth.TokenExpireMinutes)
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	return nil
}
