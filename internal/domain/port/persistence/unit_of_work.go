package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across multiple
// repositories inside one atomic transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetExpenseRepository returns an expense repository bound to the current transaction
	GetExpenseRepository(ctx context.Context) ExpenseRepository

	// GetSavingsRepository returns a savings repository bound to the current transaction
	GetSavingsRepository(ctx context.Context) SavingsRepository
}
