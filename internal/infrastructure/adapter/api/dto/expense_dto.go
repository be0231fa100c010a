package dto

import (
	"time"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
)

// displayLocation is the fixed presentation timezone for expense dates.
// Storage is UTC; clients see Asia/Manila (UTC+8) timestamps.
var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		// Hosts without tzdata still get the right offset
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// AddExpenseRequest represents the API request for recording an expense.
// Pointer fields distinguish absent values from explicit zeros; an amount of
// 0 is valid input.
type AddExpenseRequest struct {
	UserID      *uint64  `json:"user_id"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// ExpenseResponse represents one expense row in API responses
type ExpenseResponse struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// NewExpenseResponse converts an expense entity into its API representation
func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.In(displayLocation).Format(time.RFC3339),
	}
}

// NewExpenseListResponse converts a slice of expense entities, preserving
// order and yielding an empty (non-nil) slice for users with no expenses
func NewExpenseListResponse(expenses []entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, NewExpenseResponse(&expenses[i]))
	}
	return responses
}
