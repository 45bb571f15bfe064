package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/config"
	"github.com/akarpov/journal-backend/internal/transport/middleware"
)

// tokenResolver backs the bearer-token middleware.
type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter needs to assemble the HTTP surface.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Version string

	Auth    authService
	Journal journalService
	DB      dbPinger

	// TokenResolver is usually the same value as Auth, split out so tests
	// can stub token resolution alone.
	TokenResolver tokenResolver
}

// NewRouter builds the full route tree with the middleware stack applied:
// RequestID, Recovery, Logger, and CORS on every route, bearer-token
// resolution on everything under the user and entry prefixes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	entryHandler := NewEntryHandler(deps.Journal, deps.Logger)
	healthHandler := NewHealthHandler(deps.DB, deps.Version)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/live", healthHandler.Live)
	r.Get("/ready", healthHandler.Ready)

	r.Route("/user/me", func(r chi.Router) {
		r.Post("/token", authHandler.Token)
		r.Post("/register", authHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.TokenResolver))
			r.Get("/", authHandler.Me)
		})
	})

	r.Route("/users/me/entries", func(r chi.Router) {
		r.Use(middleware.Auth(deps.TokenResolver))

		r.Post("/create", entryHandler.Create)
		r.Get("/all", entryHandler.List)
		r.Get("/{id}", entryHandler.Get)
		r.Patch("/update/{id}", entryHandler.Update)
		r.Delete("/delete/{id}", entryHandler.Delete)
	})

	// RequestID runs outermost so Recovery and Logger see the request id.
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)(r)
}
