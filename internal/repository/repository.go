// Package repository declares the storage interfaces the service layer
// depends on. The sqlite subpackage is the only implementation; tests use
// in-package fakes.
package repository

import (
	"context"
	"time"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
)

// Order controls the created_at ordering of mood listings.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

type UserRepository interface {
	// Create inserts a new user. Returns apperror.ErrDuplicateIdentifier if
	// the normalized identifier is already taken.
	Create(ctx context.Context, user *model.User) error
	// GetByIdentifier looks a user up by normalized identifier.
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type MoodRepository interface {
	// Create appends an immutable mood entry, assigning ID and CreatedAt.
	Create(ctx context.Context, entry *model.MoodEntry) error
	// ListByUser returns all of a user's entries ordered by created_at.
	ListByUser(ctx context.Context, userID string, order Order) ([]model.MoodEntry, error)
}

type HabitRepository interface {
	// Create inserts a habit entry, assigning its ID.
	Create(ctx context.Context, entry *model.HabitEntry) error
	// ListByUser returns a user's habits ordered by date descending.
	ListByUser(ctx context.Context, userID string) ([]model.HabitEntry, error)
	GetByID(ctx context.Context, id string) (*model.HabitEntry, error)
	// SetDone updates the done flag. Setting the current value again is fine.
	SetDone(ctx context.Context, id string, done bool) error
}

// Day truncates t to its calendar date in UTC. All habit dates pass through
// here so the stored value never carries a time-of-day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
