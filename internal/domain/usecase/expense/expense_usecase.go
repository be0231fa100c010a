package expense

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/domain/port/persistence"
)

// ExpenseUseCase handles expense-related business logic
type ExpenseUseCase struct {
	expenseRepo  persistence.ExpenseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExpenseUseCase creates a new ExpenseUseCase
func NewExpenseUseCase(
	expenseRepo persistence.ExpenseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo:  expenseRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddExpense records a new expense for the user, stamped with the current
// time. The user ID is not checked against the users table; the foreign key
// is advisory.
func (u *ExpenseUseCase) AddExpense(ctx context.Context, userID uint64, category string, amount float64, description string) error {
	exp, err := entity.NewExpense(userID, category, amount, description, u.timeProvider)
	if err != nil {
		return err
	}

	if err := u.expenseRepo.Create(ctx, exp); err != nil {
		u.logger.Error("Failed to add expense", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	u.logger.Info("Expense added", map[string]any{
		"expense_id": exp.ID,
		"user_id":    userID,
		"category":   category,
	})

	return nil
}

// ListExpenses returns the user's expenses ordered by date descending.
// A user with no expenses yields an empty slice.
func (u *ExpenseUseCase) ListExpenses(ctx context.Context, userID uint64) ([]entity.Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.expenseRepo.ListByUser(ctx, userID)
}

// DeleteExpense removes a single expense. Deleting an unknown ID succeeds
// silently.
func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, expenseID uint64) error {
	if expenseID == 0 {
		return errs.ErrInvalidExpenseID
	}

	if err := u.expenseRepo.DeleteByID(ctx, expenseID); err != nil {
		u.logger.Error("Failed to delete expense", map[string]any{
			"expense_id": expenseID,
			"error":      err.Error(),
		})
		return err
	}

	return nil
}
