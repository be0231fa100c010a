package persistence

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// SavingsRepository defines persistence operations for savings goals and balances
type SavingsRepository interface {
	// InitGoal creates the savings-goal row for a new user with target 0,
	// preserving any previously recorded achieved flag for that user ID.
	InitGoal(ctx context.Context, userID uint64) error

	// GetGoal retrieves the savings goal for a user.
	// Returns (nil, nil) when no row exists; callers degrade to zero defaults.
	GetGoal(ctx context.Context, userID uint64) (*entity.SavingsGoal, error)

	// DeleteGoalByUser deletes the savings-goal row for a user.
	DeleteGoalByUser(ctx context.Context, userID uint64) error

	// InitBalance creates the balance row for a new user with both fields 0.
	// Existing rows are left untouched.
	InitBalance(ctx context.Context, userID uint64) error

	// SetBalance upserts the balance field, leaving goal untouched on update
	// and defaulting it to 0 on insert.
	SetBalance(ctx context.Context, userID uint64, balance float64) error

	// SetGoalAmount upserts the goal field, leaving balance untouched on
	// update and defaulting it to 0 on insert.
	SetGoalAmount(ctx context.Context, userID uint64, goal float64) error

	// GetBalance retrieves the balance row for a user.
	// Returns (nil, nil) when no row exists; callers degrade to zero defaults.
	GetBalance(ctx context.Context, userID uint64) (*entity.Balance, error)

	// DeleteBalanceByUser deletes the balance row for a user.
	DeleteBalanceByUser(ctx context.Context, userID uint64) error
}
