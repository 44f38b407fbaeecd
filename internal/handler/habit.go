package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/auth"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/service"
)

// HabitHandler exposes the habit tracker, scoped to the session's user.
type HabitHandler struct {
	habits *service.HabitService
	logger *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(habits *service.HabitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{habits: habits, logger: logger}
}

type addHabitRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // 'YYYY-MM-DD'; empty means today
}

type setDoneRequest struct {
	Done bool `json:"done"`
}

// habitResponse is the wire shape of a habit entry. The date goes out as
// plain 'YYYY-MM-DD' rather than a midnight timestamp.
type habitResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Done   bool   `json:"done"`
}

func toHabitResponse(e *model.HabitEntry) habitResponse {
	return habitResponse{
		ID:     e.ID,
		UserID: e.UserID,
		Name:   e.Name,
		Date:   e.Date.Format(model.DateLayout),
		Done:   e.Done,
	}
}

// HandleAdd creates a habit entry.
//
// HTTP: POST /api/habits
// Body: {"name":"Meditate","date":"2025-09-01"}; date optional
func (h *HabitHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	var req addHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.InvalidInput("body", "invalid JSON body"))
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation(model.DateLayout, req.Date, time.UTC)
		if err != nil {
			writeError(w, apperror.InvalidInput("date", "date must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	entry, err := h.habits.Add(r.Context(), userID, req.Name, date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHabitResponse(entry))
}

// HandleList returns the user's habits, newest date first.
//
// HTTP: GET /api/habits
func (h *HabitHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	entries, err := h.habits.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]habitResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toHabitResponse(&entries[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleSetDone sets a habit's done flag.
//
// HTTP: PATCH /api/habits/{id}/done
// Body: {"done":true}
//
// Repeating the same value is fine; the operation is idempotent. A habit
// owned by someone else 404s exactly like a missing one.
func (h *HabitHandler) HandleSetDone(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	habitID := chi.URLParam(r, "id")

	var req setDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.InvalidInput("body", "invalid JSON body"))
		return
	}

	entry, err := h.habits.SetDone(r.Context(), userID, habitID, req.Done)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHabitResponse(entry))
}
