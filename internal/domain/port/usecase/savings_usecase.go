package usecase

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// SavingsUseCase defines savings-goal and balance operations
type SavingsUseCase interface {
	// GetSavingsGoal returns the user's goal tracker, zero-valued when absent
	GetSavingsGoal(ctx context.Context, userID uint64) (*entity.SavingsGoal, error)

	// SetBalance upserts the balance amount, preserving the goal field
	SetBalance(ctx context.Context, userID uint64, balance float64) error

	// SetSavingsGoal upserts the goal amount, preserving the balance field
	SetSavingsGoal(ctx context.Context, userID uint64, goal float64) error

	// GetBalanceAndGoal returns the balance row, zero-valued when absent
	GetBalanceAndGoal(ctx context.Context, userID uint64) (*entity.Balance, error)
}
