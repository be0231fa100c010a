package persistence

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// ExpenseRepository defines persistence operations for expenses
type ExpenseRepository interface {
	// Create inserts a new expense and assigns its ID.
	// The referenced user is not checked for existence; the foreign key is
	// advisory, matching the storage schema.
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByUser returns all expenses for a user ordered by date descending.
	// A user with no expenses yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uint64) ([]entity.Expense, error)

	// DeleteByID deletes a single expense. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, expenseID uint64) error

	// DeleteByUser deletes all expenses belonging to a user.
	DeleteByUser(ctx context.Context, userID uint64) error
}
