package persistence

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create inserts a new user and assigns its ID.
	// Returns ErrEmailTaken when the email unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by email.
	// Returns ErrEmailNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// DeleteByID deletes a user row. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, userID uint64) error
}
