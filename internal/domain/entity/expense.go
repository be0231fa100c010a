package entity

import (
	"time"

	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
)

// Expense represents a single spending transaction
type Expense struct {
	ID          uint64    // Unique identifier for the expense
	UserID      uint64    // Owning user
	Category    string    // Spending category, required
	Amount      float64   // Transaction amount; zero is a valid value
	Description string    // Optional free-form note, defaults to empty
	Date        time.Time // Stamped at insertion time, stored in UTC
}

// NewExpense creates a new expense stamped with the current time.
// Amount is accepted as-is, including zero; "missing" is decided by the
// transport layer, which distinguishes absent fields from explicit zeros.
func NewExpense(userID uint64, category string, amount float64, description string, timeProvider coreport.TimeProvider) (*Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if category == "" {
		return nil, errs.ErrMissingFields
	}

	return &Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        timeProvider.Now(),
	}, nil
}
