package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/auth"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/service"
)

// MoodHandler exposes the mood journal. Every route runs behind
// RequireSession and is scoped to the session's user; there is no way to
// address another user's entries.
type MoodHandler struct {
	moods  *service.MoodService
	logger *slog.Logger
}

// NewMoodHandler creates a MoodHandler.
func NewMoodHandler(moods *service.MoodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{moods: moods, logger: logger}
}

type recordMoodRequest struct {
	Label string `json:"label"`
	Note  string `json:"note"`
}

// HandleRecord appends a mood entry.
//
// HTTP: POST /api/moods
// Body: {"label":"😃 Happy","note":"good day"}
func (h *MoodHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	var req recordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.InvalidInput("body", "invalid JSON body"))
		return
	}

	entry, err := h.moods.Record(r.Context(), userID, req.Label, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// HandleList returns the user's mood history.
//
// HTTP: GET /api/moods?order=asc|desc (default asc)
func (h *MoodHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	order := repository.Order(r.URL.Query().Get("order"))

	entries, err := h.moods.List(r.Context(), userID, order)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleExportCSV streams the user's mood history as a CSV download.
//
// HTTP: GET /api/moods/export
func (h *MoodHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	data, err := h.moods.ExportCSV(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", service.CSVFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write CSV response", slog.String("error", err.Error()))
	}
}

// HandleFrequency returns the label → count aggregate for the charting
// frontend's frequency view.
//
// HTTP: GET /api/moods/frequency
func (h *MoodHandler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	counts, err := h.moods.Frequency(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

// HandleTimeline returns mood entries projected onto the ordinal scale for
// the charting frontend's timeline view.
//
// HTTP: GET /api/moods/timeline
func (h *MoodHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthenticated())
		return
	}

	points, err := h.moods.Timeline(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, points)
}
