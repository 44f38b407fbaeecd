package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// HabitStore implements repository.HabitRepository.
type HabitStore struct {
	conn *sql.DB
}

var _ repository.HabitRepository = (*HabitStore)(nil)

// Create inserts a habit entry, assigning its ID in place. The date is
// stored as TEXT 'YYYY-MM-DD'.
func (s *HabitStore) Create(ctx context.Context, entry *model.HabitEntry) error {
	entry.ID = xid.New().String()
	entry.Date = repository.Day(entry.Date)

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO habits (id, user_id, name, date, done)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.UserID,
		entry.Name,
		entry.Date.Format(model.DateLayout),
		entry.Done,
	)
	if err != nil {
		return apperror.Storage("inserting habit entry", err)
	}

	return nil
}

// ListByUser returns a user's habits ordered by date descending, newest
// first, with the xid as a tiebreak within a day.
func (s *HabitStore) ListByUser(ctx context.Context, userID string) ([]model.HabitEntry, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, user_id, name, date, done
		 FROM habits WHERE user_id = ? ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, apperror.Storage("listing habit entries", err)
	}
	defer rows.Close()

	entries := []model.HabitEntry{}
	for rows.Next() {
		e, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterating habit entries", err)
	}

	return entries, nil
}

// GetByID retrieves a habit entry by ID. The service uses this to verify
// ownership before any mutation.
func (s *HabitStore) GetByID(ctx context.Context, id string) (*model.HabitEntry, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, user_id, name, date, done FROM habits WHERE id = ?`,
		id,
	)

	e, err := scanHabit(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("habit", id)
		}
		return nil, err
	}

	return &e, nil
}

// SetDone updates the done flag. Writing the current value again is a
// harmless no-op at this layer; idempotence is part of the contract.
func (s *HabitStore) SetDone(ctx context.Context, id string, done bool) error {
	result, err := s.conn.ExecContext(ctx,
		`UPDATE habits SET done = ? WHERE id = ?`,
		done, id,
	)
	if err != nil {
		return apperror.Storage(fmt.Sprintf("updating habit %s", id), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("checking rows affected", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("habit", id)
	}

	return nil
}

// scanHabit reads one habit row, parsing the stored date text back into a
// time.Time at UTC midnight.
func scanHabit(scan func(dest ...any) error) (model.HabitEntry, error) {
	var (
		e       model.HabitEntry
		dateStr string
	)
	if err := scan(&e.ID, &e.UserID, &e.Name, &dateStr, &e.Done); err != nil {
		if err == sql.ErrNoRows {
			return model.HabitEntry{}, err
		}
		return model.HabitEntry{}, apperror.Storage("scanning habit entry", err)
	}

	date, err := time.ParseInLocation(model.DateLayout, dateStr, time.UTC)
	if err != nil {
		return model.HabitEntry{}, apperror.Storage("parsing habit date", err)
	}
	e.Date = date

	return e, nil
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows
}
