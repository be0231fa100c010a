package usecase

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// ExpenseUseCase defines expense management operations
type ExpenseUseCase interface {
	// AddExpense records a new expense stamped with the current time
	AddExpense(ctx context.Context, userID uint64, category string, amount float64, description string) error

	// ListExpenses returns the user's expenses, most recent first
	ListExpenses(ctx context.Context, userID uint64) ([]entity.Expense, error)

	// DeleteExpense removes a single expense. Idempotent.
	DeleteExpense(ctx context.Context, expenseID uint64) error
}
