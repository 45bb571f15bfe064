package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/pkg/ctxutil"
)

// RequestID reads X-Request-Id from the incoming request, generating one
// when absent, and makes it available on the context and the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
