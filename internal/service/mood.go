package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// MaxNoteLength bounds the free-text note attached to a mood entry.
const MaxNoteLength = 2000

// CSVFilename is the suggested download name for a mood export.
const CSVFilename = "moods.csv"

// csvHeader is fixed for compatibility with the spreadsheets users already
// built against the old app's exports. Do not reorder.
var csvHeader = []string{"mood", "notes", "created_at"}

// MoodService handles the mood journal: recording, listing, CSV export, and
// the aggregate views the charting frontend consumes.
type MoodService struct {
	moods  repository.MoodRepository
	logger *slog.Logger
}

// NewMoodService creates a MoodService.
func NewMoodService(moods repository.MoodRepository, logger *slog.Logger) *MoodService {
	return &MoodService{
		moods:  moods,
		logger: logger,
	}
}

// Record appends a mood entry for the user. The label must be one of
// model.MoodScale; the note is optional free text.
func (s *MoodService) Record(ctx context.Context, userID, label, note string) (*model.MoodEntry, error) {
	label = strings.TrimSpace(label)

	if label == "" {
		return nil, apperror.InvalidInput("label", "mood is required")
	}
	if !model.ValidMoodLabel(label) {
		return nil, apperror.InvalidInput("label",
			fmt.Sprintf("mood must be one of: %s", strings.Join(model.MoodScale, ", ")))
	}
	if len(note) > MaxNoteLength {
		return nil, apperror.InvalidInput("note",
			fmt.Sprintf("note must be %d characters or less", MaxNoteLength))
	}

	entry := &model.MoodEntry{
		UserID: userID,
		Label:  label,
		Note:   strings.TrimSpace(note),
	}

	if err := s.moods.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record mood",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("recording mood: %w", err)
	}

	s.logger.Info("mood recorded",
		slog.String("id", entry.ID),
		slog.String("userID", userID),
		slog.String("label", entry.Label),
	)

	return entry, nil
}

// List returns the user's mood history in the given order. An unset order
// defaults to ascending. No entries is an empty slice, not an error.
func (s *MoodService) List(ctx context.Context, userID string, order repository.Order) ([]model.MoodEntry, error) {
	if order == "" {
		order = repository.Ascending
	}
	if order != repository.Ascending && order != repository.Descending {
		return nil, apperror.InvalidInput("order", "order must be asc or desc")
	}

	entries, err := s.moods.ListByUser(ctx, userID, order)
	if err != nil {
		s.logger.Error("failed to list moods",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing moods: %w", err)
	}

	return entries, nil
}

// ExportCSV serializes the user's mood history, oldest first, as UTF-8 CSV
// with the fixed header `mood,notes,created_at`. Quoting follows RFC 4180:
// encoding/csv escapes delimiters, quotes, and newlines in field values.
// Timestamps are RFC 3339 UTC so a re-import can parse them back.
func (s *MoodService) ExportCSV(ctx context.Context, userID string) ([]byte, error) {
	entries, err := s.List(ctx, userID, repository.Ascending)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Label, e.Note, e.CreatedAt.UTC().Format(time.RFC3339Nano)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// Frequency counts how often each mood label appears in the user's history.
// Labels never recorded are absent from the map; zero entries yields an
// empty map.
func (s *MoodService) Frequency(ctx context.Context, userID string) (map[string]int, error) {
	entries, err := s.List(ctx, userID, repository.Ascending)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(model.MoodScale))
	for _, e := range entries {
		counts[e.Label]++
	}

	return counts, nil
}

// TimelinePoint is one mood entry projected onto the ordinal scale, the
// shape the charting frontend plots directly.
type TimelinePoint struct {
	CreatedAt time.Time `json:"createdAt"`
	Label     string    `json:"label"`
	Ordinal   int       `json:"ordinal"`
}

// Timeline projects the user's history onto the fixed ordinal scale in
// ascending time order. Labels outside the scale (rows written by older app
// drafts) get the sentinel ordinal rather than an error.
func (s *MoodService) Timeline(ctx context.Context, userID string) ([]TimelinePoint, error) {
	entries, err := s.List(ctx, userID, repository.Ascending)
	if err != nil {
		return nil, err
	}

	points := make([]TimelinePoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, TimelinePoint{
			CreatedAt: e.CreatedAt,
			Label:     e.Label,
			Ordinal:   model.MoodOrdinal(e.Label),
		})
	}

	return points, nil
}
