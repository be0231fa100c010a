package dto

// SetBalanceRequest represents the API request for updating the balance.
// Pointer fields distinguish absent values from explicit zeros.
type SetBalanceRequest struct {
	UserID  *uint64  `json:"user_id"`
	Balance *float64 `json:"balance"`
}

// SetSavingsGoalRequest represents the API request for updating the goal amount
type SetSavingsGoalRequest struct {
	UserID      *uint64  `json:"user_id"`
	SavingsGoal *float64 `json:"savings_goal"`
}

// SavingsGoalResponse represents the goal-tracker API response
type SavingsGoalResponse struct {
	Target   float64 `json:"target"`
	Achieved int     `json:"achieved"`
}

// BalanceGoalResponse represents the balance-and-goal API response
type BalanceGoalResponse struct {
	Balance     float64 `json:"balance"`
	SavingsGoal float64 `json:"savings_goal"`
}
