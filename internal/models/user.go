package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `db:"id"`

	// Username is the unique login name chosen at registration.
	Username string `db:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The raw password is never persisted.
	PasswordHash string `db:"password_hash"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `db:"created_at"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
