// Package auth provides password hashing, session token signing, and the
// HTTP middleware that resolves a request to an authenticated user.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor for production use. Roughly 250ms
// per hash on current server hardware.
const defaultCost = 12

// PasswordService hashes and verifies passwords with bcrypt.
//
// bcrypt generates a random per-password salt and embeds it in the output,
// so one stored string carries everything Verify needs. The deliberate
// slowness is the point: a fast digest (the bug this replaces used bare
// SHA-256) can be brute-forced offline in bulk.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceForTest creates a PasswordService with a reduced cost so
// tests don't pay ~250ms per hash. Not for production use.
func NewPasswordServiceForTest(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash hashes plaintext with bcrypt. The result is a self-contained string
// (version, cost, salt, digest) suitable for direct storage.
//
// Plaintexts longer than 72 bytes are rejected rather than silently
// truncated, which is what bcrypt would otherwise do.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks plaintext against a stored bcrypt hash. Returns nil on
// match. The comparison is constant-time inside bcrypt, so response timing
// does not leak how much of the password was right.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
