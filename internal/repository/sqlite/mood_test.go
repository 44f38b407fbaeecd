package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

func recordTestMood(t *testing.T, db *DB, userID, label, note string) *model.MoodEntry {
	t.Helper()

	entry := &model.MoodEntry{
		UserID: userID,
		Label:  label,
		Note:   note,
	}
	if err := db.Moods().Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to record test mood: %v", err)
	}
	return entry
}

func TestMoodCreate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "mood@example.com")

	entry := recordTestMood(t, db, user.ID, "😃 Happy", "good day")

	if entry.ID == "" {
		t.Error("Create() did not set entry.ID")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("Create() did not set entry.CreatedAt")
	}
}

func TestMoodListByUser_Ascending(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "mood@example.com")

	recordTestMood(t, db, user.ID, "😃 Happy", "good day")
	time.Sleep(2 * time.Millisecond) // distinct created_at
	recordTestMood(t, db, user.ID, "😢 Sad", "")

	entries, err := db.Moods().ListByUser(context.Background(), user.ID, repository.Ascending)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Label != "😃 Happy" || entries[1].Label != "😢 Sad" {
		t.Errorf("ascending order wrong: got %q then %q", entries[0].Label, entries[1].Label)
	}
	if !entries[0].CreatedAt.Before(entries[1].CreatedAt) {
		t.Error("created_at not strictly increasing in insert order")
	}
}

func TestMoodListByUser_Descending(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "mood@example.com")

	recordTestMood(t, db, user.ID, "😃 Happy", "")
	time.Sleep(2 * time.Millisecond)
	recordTestMood(t, db, user.ID, "😢 Sad", "")

	entries, err := db.Moods().ListByUser(context.Background(), user.ID, repository.Descending)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Label != "😢 Sad" {
		t.Errorf("descending order wrong: newest first should be %q, got %q", "😢 Sad", entries[0].Label)
	}
}

func TestMoodListByUser_Empty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "empty@example.com")

	entries, err := db.Moods().ListByUser(context.Background(), user.ID, repository.Ascending)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if entries == nil {
		t.Error("ListByUser() returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestMoodListByUser_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	asha := createTestUser(t, db, "asha@example.com")
	bela := createTestUser(t, db, "bela@example.com")

	recordTestMood(t, db, asha.ID, "😃 Happy", "")
	recordTestMood(t, db, bela.ID, "😢 Sad", "")

	entries, err := db.Moods().ListByUser(context.Background(), asha.ID, repository.Ascending)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].UserID != asha.ID {
		t.Error("ListByUser() leaked another user's entry")
	}
}
