package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// UserStore implements repository.UserRepository.
type UserStore struct {
	conn *sql.DB
}

var _ repository.UserRepository = (*UserStore)(nil)

// Create inserts a new user row, assigning ID and CreatedAt in place.
//
// The caller (the account service) has already normalized the identifier.
// Uniqueness rests on the UNIQUE constraint rather than a lookup-then-insert
// pair, so two concurrent registrations of the same address cannot both win;
// the loser gets apperror.ErrDuplicateIdentifier.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	user.CreatedAt = time.Now().UTC()

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO users (id, display_name, identifier, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.DisplayName,
		user.Identifier,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.DuplicateIdentifier(user.Identifier)
		}
		return apperror.Storage("inserting user", err)
	}

	return nil
}

// GetByIdentifier retrieves a user by normalized identifier.
// Returns apperror.ErrNotFound if no such user exists; the account service
// translates that to the uniform invalid-credentials error on login.
func (s *UserStore) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	return s.getUser(ctx,
		`SELECT id, display_name, identifier, password_hash, created_at
		 FROM users WHERE identifier = ?`,
		identifier,
	)
}

// GetByID retrieves a user by internal ID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.getUser(ctx,
		`SELECT id, display_name, identifier, password_hash, created_at
		 FROM users WHERE id = ?`,
		id,
	)
}

func (s *UserStore) getUser(ctx context.Context, query, key string) (*model.User, error) {
	var u model.User

	err := s.conn.QueryRowContext(ctx, query, key).Scan(
		&u.ID,
		&u.DisplayName,
		&u.Identifier,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", key)
		}
		return nil, apperror.Storage(fmt.Sprintf("getting user %s", key), err)
	}

	return &u, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The modernc driver surfaces it as a plain error whose text
// contains the constraint message, so we match on that.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
