package apperror

import (
	"errors"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "InvalidInput wraps ErrInvalidInput",
			err:       InvalidInput("name", "name is required"),
			target:    ErrInvalidInput,
			wantMatch: true,
		},
		{
			name:      "DuplicateIdentifier wraps ErrDuplicateIdentifier",
			err:       DuplicateIdentifier("asha@example.com"),
			target:    ErrDuplicateIdentifier,
			wantMatch: true,
		},
		{
			name:      "InvalidCredentials wraps ErrInvalidCredentials",
			err:       InvalidCredentials(),
			target:    ErrInvalidCredentials,
			wantMatch: true,
		},
		{
			name:      "Unauthenticated wraps ErrUnauthenticated",
			err:       Unauthenticated(),
			target:    ErrUnauthenticated,
			wantMatch: true,
		},
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("habit", "abc123"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "Storage wraps ErrStorage",
			err:       Storage("inserting user", errors.New("disk I/O error")),
			target:    ErrStorage,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrInvalidInput",
			err:       NotFound("habit", "abc123"),
			target:    ErrInvalidInput,
			wantMatch: false,
		},
		{
			name:      "InvalidCredentials does NOT match ErrUnauthenticated",
			err:       InvalidCredentials(),
			target:    ErrUnauthenticated,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound message includes resource and id",
			err:         NotFound("habit", "abc123"),
			wantMessage: "habit not found with id abc123",
		},
		{
			name:        "InvalidInput uses custom message",
			err:         InvalidInput("name", "name is required"),
			wantMessage: "name is required",
		},
		{
			name:        "DuplicateIdentifier names the identifier",
			err:         DuplicateIdentifier("asha@example.com"),
			wantMessage: "an account already exists for asha@example.com",
		},
		{
			name:        "InvalidCredentials does not name a field",
			err:         InvalidCredentials(),
			wantMessage: "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestStorageHidesCause(t *testing.T) {
	// The driver error stays in the chain for logs but must not appear in
	// the user-facing message.
	cause := errors.New("database table is locked")
	err := Storage("updating habit", cause)

	if got := err.Error(); got != "a storage error occurred, please try again" {
		t.Errorf("Error() = %q, want generic storage message", got)
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("Storage() should match ErrStorage")
	}
}

func TestInvalidInputField(t *testing.T) {
	err := InvalidInput("email", "email is required")

	if err.Field != "email" {
		t.Errorf("Field = %q, want %q", err.Field, "email")
	}
}
