// Package apperror defines the application's error taxonomy.
//
// Every failure a caller can recover from is one of the sentinel kinds below,
// wrapped in an AppError carrying a user-displayable message. Handlers map the
// sentinels to HTTP status codes; services and repositories never expose raw
// driver errors to the presentation layer.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a missing or empty required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateIdentifier marks a registration collision on the
	// normalized email.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrInvalidCredentials marks a failed login. It is returned uniformly
	// whether the identifier is unknown or the password is wrong, so a caller
	// cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated marks an operation attempted with no active session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound marks a reference to a nonexistent (or foreign) record.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks an underlying persistence failure.
	ErrStorage = errors.New("storage failure")
)

// AppError pairs a sentinel kind with a human-readable message.
type AppError struct {
	Err     error  // sentinel kind, matched with errors.Is
	Message string // user-displayable description
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput returns an AppError for a missing or malformed field.
func InvalidInput(field, message string) *AppError {
	return &AppError{
		Err:     ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// DuplicateIdentifier returns an AppError for a registration collision.
func DuplicateIdentifier(identifier string) *AppError {
	return &AppError{
		Err:     ErrDuplicateIdentifier,
		Message: fmt.Sprintf("an account already exists for %s", identifier),
	}
}

// InvalidCredentials returns the uniform login-failure error. The message is
// intentionally silent about which of the identifier or password was wrong.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

// Unauthenticated returns an AppError for operations that require a session.
func Unauthenticated() *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: "sign in to continue",
	}
}

// NotFound returns an AppError for a nonexistent record.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// Storage wraps a persistence error. The cause stays in the chain for
// logging; the message stays generic so driver details never reach the user.
func Storage(op string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %v", ErrStorage, op, cause),
		Message: "a storage error occurred, please try again",
	}
}
