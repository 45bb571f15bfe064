package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth returns middleware that resolves a bearer token into a user ID and
// stores it on the request context. Requests without an Authorization header
// pass through anonymously; protected handlers reject them when they find no
// user ID in the context. A header that is present but invalid is rejected
// here with 401.
func Auth(resolver tokenResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"could not validate credentials"}`))
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
