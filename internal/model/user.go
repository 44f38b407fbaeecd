// Package model defines the data structures shared across the application.
package model

import "time"

// User represents a registered account.
//
// Identifier is the login email, stored trimmed and lowercased; the UNIQUE
// constraint in the database applies to this normalized form, so two spellings
// of the same address cannot create two accounts. PasswordHash is an opaque
// bcrypt string and is never serialized to JSON.
type User struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Identifier   string    `json:"identifier"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
