package account

import (
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/domain/port/persistence"
)

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	expenseRepo  persistence.ExpenseRepository
	savingsRepo  persistence.SavingsRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	expenseRepo persistence.ExpenseRepository,
	savingsRepo persistence.SavingsRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		uow:          uow,
		userRepo:     userRepo,
		expenseRepo:  expenseRepo,
		savingsRepo:  savingsRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
