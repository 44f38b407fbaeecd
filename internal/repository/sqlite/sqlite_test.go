package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
)

// newTestDB opens a throwaway database in the test's temp directory and
// closes it when the test ends.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	return db
}

// createTestUser inserts a user and fails the test on error.
func createTestUser(t *testing.T, db *DB, identifier string) *model.User {
	t.Helper()

	user := &model.User{
		DisplayName:  "Test User",
		Identifier:   identifier,
		PasswordHash: "$2a$04$notarealhashbutopaque",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run against the same schema must not error.
	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate() error = %v", err)
	}
}
