package entity

import (
	"time"

	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
)

// User represents a registered account
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Login email, unique across all users
	passwordHash string    // One-way salted hash, never the raw password (private)
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user with the given email and password hash
func NewUser(email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if email == "" || passwordHash == "" {
		return nil, errs.ErrMissingFields
	}

	return &User{
		Email:        email,
		passwordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// PasswordHash returns the stored hash (for persistence and verification only)
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// SetPasswordHash updates the stored hash (for internal use, like repositories)
func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
}
