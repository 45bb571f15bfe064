package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
)

// supportedMethods maps the configurable algorithm identifier to a signing
// method. Only HMAC variants are supported; the secret is a shared key.
var supportedMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// TokenManager issues and resolves stateless bearer tokens. Validity is
// determined purely by signature and expiry; there is no server-side
// session state.
type TokenManager struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager. It fails if the secret is empty,
// the algorithm is not one of HS256/HS384/HS512, or the TTL is not positive,
// so a misconfigured process refuses to start instead of issuing bad tokens.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token manager: signing secret is empty")
	}
	method, ok := supportedMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("token manager: unsupported algorithm %q", algorithm)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token manager: token TTL must be positive, got %s", ttl)
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token with the user ID as subject and
// expiry = now + TTL.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Resolve verifies signature and expiry and returns the subject user ID.
// Malformed, mis-signed, expired, and subject-less tokens all fail with
// domain.ErrUnauthorized; the caller cannot distinguish the cases.
func (m *TokenManager) Resolve(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("empty token: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	if claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("token missing subject: %w", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", domain.ErrUnauthorized)
	}

	return userID, nil
}
