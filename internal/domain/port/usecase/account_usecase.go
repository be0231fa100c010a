package usecase

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// AccountUseCase defines account management operations
type AccountUseCase interface {
	// Register creates a user together with its savings-goal and balance rows
	// and returns the new user's ID
	Register(ctx context.Context, email, password string) (uint64, error)

	// Login verifies credentials and returns the matching user
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// DeleteUser removes the user and all rows owned by it. Idempotent.
	DeleteUser(ctx context.Context, userID uint64) error
}
