package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// MaxHabitNameLength bounds the habit name.
const MaxHabitNameLength = 100

// HabitService handles the habit tracker.
type HabitService struct {
	habits repository.HabitRepository
	logger *slog.Logger

	// now is swappable in tests so "date defaults to today" is assertable.
	now func() time.Time
}

// NewHabitService creates a HabitService.
func NewHabitService(habits repository.HabitRepository, logger *slog.Logger) *HabitService {
	return &HabitService{
		habits: habits,
		logger: logger,
		now:    time.Now,
	}
}

// Add creates a habit entry for the user. A zero date defaults to today;
// done always starts false.
func (s *HabitService) Add(ctx context.Context, userID, name string, date time.Time) (*model.HabitEntry, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.InvalidInput("name", "habit name is required")
	}
	if len(name) > MaxHabitNameLength {
		return nil, apperror.InvalidInput("name",
			fmt.Sprintf("habit name must be %d characters or less", MaxHabitNameLength))
	}

	if date.IsZero() {
		date = s.now()
	}

	entry := &model.HabitEntry{
		UserID: userID,
		Name:   name,
		Date:   repository.Day(date),
		Done:   false,
	}

	if err := s.habits.Create(ctx, entry); err != nil {
		s.logger.Error("failed to add habit",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding habit: %w", err)
	}

	s.logger.Info("habit added",
		slog.String("id", entry.ID),
		slog.String("userID", userID),
		slog.String("name", entry.Name),
	)

	return entry, nil
}

// List returns the user's habits, newest date first. No habits is an empty
// slice, not an error.
func (s *HabitService) List(ctx context.Context, userID string) ([]model.HabitEntry, error) {
	entries, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list habits",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing habits: %w", err)
	}

	return entries, nil
}

// SetDone flips a habit's done flag on behalf of userID.
//
// The entry is fetched first and its owner checked: a habit belonging to a
// different user reports NotFound, the same as a habit that does not exist,
// so callers cannot probe other users' habit IDs. Setting the flag to its
// current value is an idempotent no-op.
func (s *HabitService) SetDone(ctx context.Context, userID, habitID string, done bool) (*model.HabitEntry, error) {
	habitID = strings.TrimSpace(habitID)
	if habitID == "" {
		return nil, apperror.InvalidInput("id", "habit ID is required")
	}

	entry, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			s.logger.Error("failed to fetch habit",
				slog.String("habitID", habitID),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("fetching habit: %w", err)
	}

	if entry.UserID != userID {
		return nil, apperror.NotFound("habit", habitID)
	}

	if entry.Done != done {
		if err := s.habits.SetDone(ctx, habitID, done); err != nil {
			s.logger.Error("failed to update habit",
				slog.String("habitID", habitID),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("updating habit: %w", err)
		}
		entry.Done = done
	}

	return entry, nil
}
