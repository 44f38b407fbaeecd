package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
)

func addTestHabit(t *testing.T, db *DB, userID, name string, date time.Time) *model.HabitEntry {
	t.Helper()

	entry := &model.HabitEntry{
		UserID: userID,
		Name:   name,
		Date:   date,
	}
	if err := db.Habits().Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to add test habit: %v", err)
	}
	return entry
}

func TestHabitCreate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "habit@example.com")

	date := time.Date(2025, 9, 1, 14, 30, 0, 0, time.Local)
	entry := addTestHabit(t, db, user.ID, "Meditate", date)

	if entry.ID == "" {
		t.Error("Create() did not set entry.ID")
	}
	if entry.Done {
		t.Error("Create() should leave done false")
	}

	// The stored date must be the calendar day with no time-of-day.
	found, err := db.Habits().GetByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got := found.Date.Format(model.DateLayout); got != date.UTC().Format(model.DateLayout) {
		t.Errorf("stored date = %q, want %q", got, date.UTC().Format(model.DateLayout))
	}
	if h, m, s := found.Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Error("stored date carries a time-of-day")
	}
}

func TestHabitListByUser_NewestDateFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "habit@example.com")

	addTestHabit(t, db, user.ID, "Journal", time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC))
	addTestHabit(t, db, user.ID, "Meditate", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	entries, err := db.Habits().ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "Meditate" {
		t.Errorf("first entry = %q, want the newest date first", entries[0].Name)
	}
}

func TestHabitListByUser_Empty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "empty@example.com")

	entries, err := db.Habits().ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("ListByUser() = %v, want empty slice", entries)
	}
}

func TestHabitSetDone(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "habit@example.com")
	entry := addTestHabit(t, db, user.ID, "Meditate", time.Now())

	if err := db.Habits().SetDone(context.Background(), entry.ID, true); err != nil {
		t.Fatalf("SetDone() error = %v", err)
	}

	found, err := db.Habits().GetByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !found.Done {
		t.Error("SetDone(true) did not persist")
	}

	// Setting the same value again is a no-op, not an error, and must not
	// create another row.
	if err := db.Habits().SetDone(context.Background(), entry.ID, true); err != nil {
		t.Fatalf("repeated SetDone() error = %v", err)
	}
	entries, err := db.Habits().ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d after repeated SetDone, want 1", len(entries))
	}
}

func TestHabitSetDone_UnknownID(t *testing.T) {
	db := newTestDB(t)

	err := db.Habits().SetDone(context.Background(), "no-such-habit", true)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("SetDone() error = %v, want ErrNotFound", err)
	}
}

func TestHabitGetByID_Unknown(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Habits().GetByID(context.Background(), "no-such-habit")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
}
