package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/xid"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// MoodStore implements repository.MoodRepository.
type MoodStore struct {
	conn *sql.DB
}

var _ repository.MoodRepository = (*MoodStore)(nil)

// Create appends a mood entry, assigning ID and CreatedAt in place.
// Entries are immutable; there is no corresponding update or delete.
func (s *MoodStore) Create(ctx context.Context, entry *model.MoodEntry) error {
	entry.ID = xid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO moods (id, user_id, label, note, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.UserID,
		entry.Label,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return apperror.Storage("inserting mood entry", err)
	}

	return nil
}

// ListByUser returns all mood entries for userID ordered by created_at,
// with the xid as a tiebreak for entries written in the same instant.
// A user with no entries gets an empty (non-nil) slice.
func (s *MoodStore) ListByUser(ctx context.Context, userID string, order repository.Order) ([]model.MoodEntry, error) {
	query := `SELECT id, user_id, label, note, created_at
	          FROM moods WHERE user_id = ? ORDER BY created_at ASC, id ASC`
	if order == repository.Descending {
		query = `SELECT id, user_id, label, note, created_at
		         FROM moods WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	}

	rows, err := s.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperror.Storage("listing mood entries", err)
	}
	defer rows.Close()

	entries := []model.MoodEntry{}
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Label, &e.Note, &e.CreatedAt); err != nil {
			return nil, apperror.Storage("scanning mood entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterating mood entries", err)
	}

	return entries, nil
}
