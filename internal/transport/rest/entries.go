package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akarpov/journal-backend/internal/domain"
	"github.com/akarpov/journal-backend/internal/service/journal"
)

// journalService defines the minimal interface needed by EntryHandler.
type journalService interface {
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*domain.Entry, error)
	ListEntries(ctx context.Context) ([]domain.EntrySummary, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, input journal.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

// EntryHandler serves journal entry REST endpoints.
type EntryHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc journalService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type entryRequest struct {
	Work      string `json:"work"`
	Struggle  string `json:"struggle"`
	Intention string `json:"intention"`
}

type entryResponse struct {
	ID        string     `json:"id"`
	Work      string     `json:"work"`
	Struggle  string     `json:"struggle"`
	Intention string     `json:"intention"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type entrySummaryResponse struct {
	ID        string `json:"id"`
	Work      string `json:"work"`
	Struggle  string `json:"struggle"`
	Intention string `json:"intention"`
}

// Create handles POST /users/me/entries/create.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.svc.CreateEntry(r.Context(), journal.CreateEntryInput{
		Work:      req.Work,
		Struggle:  req.Struggle,
		Intention: req.Intention,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "You already have an entry for today.")
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeDetail(w, http.StatusCreated, "Entry created successfully")
}

// List handles GET /users/me/entries/all.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]entrySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, entrySummaryResponse{
			ID:        s.ID.String(),
			Work:      s.Work,
			Struggle:  s.Struggle,
			Intention: s.Intention,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /users/me/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Entry %s not found", entryID))
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryResponse{
		ID:        entry.ID.String(),
		Work:      entry.Work,
		Struggle:  entry.Struggle,
		Intention: entry.Intention,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	})
}

// Update handles PATCH /users/me/entries/update/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.svc.UpdateEntry(r.Context(), entryID, journal.UpdateEntryInput{
		Work:      req.Work,
		Struggle:  req.Struggle,
		Intention: req.Intention,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Entry %s not found", entryID))
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeDetail(w, http.StatusOK, "Entry updated successfully")
}

// Delete handles DELETE /users/me/entries/delete/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, ok := h.entryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Entry %s not found", entryID))
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeDetail(w, http.StatusOK, "Entry deleted successfully")
}

// entryID parses the {id} path parameter. An unparsable ID is reported the
// same way as a missing entry so that IDs are not probeable by format.
func (h *EntryHandler) entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	entryID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Entry %s not found", raw))
		return uuid.Nil, false
	}
	return entryID, true
}

func (h *EntryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "could not validate credentials")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "entry not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "You already have an entry for today.")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
