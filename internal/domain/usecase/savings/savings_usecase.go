package savings

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/domain/port/persistence"
)

// SavingsUseCase handles savings-goal and balance business logic
type SavingsUseCase struct {
	savingsRepo persistence.SavingsRepository
	logger      coreport.Logger
}

// NewSavingsUseCase creates a new SavingsUseCase
func NewSavingsUseCase(savingsRepo persistence.SavingsRepository, logger coreport.Logger) *SavingsUseCase {
	return &SavingsUseCase{
		savingsRepo: savingsRepo,
		logger:      logger,
	}
}

// GetSavingsGoal returns the user's goal tracker. A missing row degrades to
// zero-valued defaults, never an error.
func (u *SavingsUseCase) GetSavingsGoal(ctx context.Context, userID uint64) (*entity.SavingsGoal, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	goal, err := u.savingsRepo.GetGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return &entity.SavingsGoal{UserID: userID}, nil
	}
	return goal, nil
}

// SetBalance upserts the balance amount, leaving the goal field untouched on
// update and defaulting it to 0 on insert.
func (u *SavingsUseCase) SetBalance(ctx context.Context, userID uint64, balance float64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	if err := u.savingsRepo.SetBalance(ctx, userID, balance); err != nil {
		u.logger.Error("Failed to set balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	u.logger.Info("Balance updated", map[string]any{
		"user_id": userID,
	})

	return nil
}

// SetSavingsGoal upserts the goal amount, leaving the balance field untouched
// on update and defaulting it to 0 on insert.
func (u *SavingsUseCase) SetSavingsGoal(ctx context.Context, userID uint64, goal float64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	if err := u.savingsRepo.SetGoalAmount(ctx, userID, goal); err != nil {
		u.logger.Error("Failed to set savings goal", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	u.logger.Info("Savings goal updated", map[string]any{
		"user_id": userID,
	})

	return nil
}

// GetBalanceAndGoal returns the user's balance row. A missing row degrades to
// zero-valued defaults, never an error.
func (u *SavingsUseCase) GetBalanceAndGoal(ctx context.Context, userID uint64) (*entity.Balance, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	balance, err := u.savingsRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return &entity.Balance{UserID: userID}, nil
	}
	return balance, nil
}
