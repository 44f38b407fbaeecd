// Package service contains the business logic layer: validation, the
// account rules, and the mood/habit journal semantics. Handlers stay
// HTTP-only, repositories stay SQL-only.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aartijoshi3010-cyber/MentalHealth/internal/apperror"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/auth"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/model"
	"github.com/aartijoshi3010-cyber/MentalHealth/internal/repository"
)

// AccountService handles registration and authentication.
type AccountService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAccountService creates an AccountService with its dependencies.
func NewAccountService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *AccountService {
	return &AccountService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// NormalizeIdentifier trims and lowercases an identifier. Registration and
// authentication must apply the identical normalization, otherwise a user
// who signed up as "Asha@Example.com" could never log back in.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Register creates a new account.
//
// All three fields are required after trimming. The password is stored only
// as a bcrypt hash. A collision on the normalized identifier returns
// apperror.ErrDuplicateIdentifier and leaves the existing account untouched.
func (s *AccountService) Register(ctx context.Context, displayName, identifier, password string) (*model.User, error) {
	displayName = strings.TrimSpace(displayName)
	identifier = NormalizeIdentifier(identifier)

	if displayName == "" {
		return nil, apperror.InvalidInput("displayName", "name is required")
	}
	if identifier == "" {
		return nil, apperror.InvalidInput("identifier", "email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperror.InvalidInput("password", "password is required")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, apperror.InvalidInput("password", "password is too long")
	}

	user := &model.User{
		DisplayName:  displayName,
		Identifier:   identifier,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, apperror.ErrDuplicateIdentifier) {
			s.logger.Error("failed to create user",
				slog.String("identifier", identifier),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("registering user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("identifier", user.Identifier),
	)

	return user, nil
}

// Authenticate verifies a credential pair and returns the matching user.
//
// Unknown identifier and wrong password both come back as the same
// apperror.ErrInvalidCredentials; nothing in the result distinguishes which
// check failed. Storage errors are still reported as themselves; a database
// outage is not a login failure.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password string) (*model.User, error) {
	identifier = NormalizeIdentifier(identifier)
	if identifier == "" || password == "" {
		return nil, apperror.InvalidCredentials()
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.InvalidCredentials()
		}
		s.logger.Error("failed to look up user for login",
			slog.String("identifier", identifier),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	s.logger.Info("user authenticated", slog.String("userID", user.ID))

	return user, nil
}

// GetUserByID returns the user for the given internal ID. Used by the /api/me
// handler after the middleware has resolved the session.
func (s *AccountService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperror.InvalidInput("id", "user ID is required")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}

	return user, nil
}
