package account

import (
	"context"

	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
)

// DeleteUser removes the user row along with its expenses, savings goal and
// balance row. Deleting an unknown user ID succeeds silently.
func (u *AccountUseCase) DeleteUser(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return errs.NewStorageError("delete user", err)
	}

	userRepo := u.uow.GetUserRepository(txCtx)
	expenseRepo := u.uow.GetExpenseRepository(txCtx)
	savingsRepo := u.uow.GetSavingsRepository(txCtx)

	steps := []func() error{
		func() error { return userRepo.DeleteByID(txCtx, userID) },
		func() error { return expenseRepo.DeleteByUser(txCtx, userID) },
		func() error { return savingsRepo.DeleteGoalByUser(txCtx, userID) },
		func() error { return savingsRepo.DeleteBalanceByUser(txCtx, userID) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			_ = u.uow.Rollback(txCtx)
			return err
		}
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return errs.NewStorageError("delete user", err)
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id": userID,
	})

	return nil
}
