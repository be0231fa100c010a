package entity

import "time"

// SavingsGoal tracks whether a user's savings target has been achieved.
// Distinct from the goal amount on Balance; the two share the word "goal"
// but not the meaning.
type SavingsGoal struct {
	ID       uint64
	UserID   uint64 // One row per user
	Target   float64
	Achieved int // Flag, 0 or 1
	SetDate  time.Time
}

// Balance holds a user's running total and savings-goal amount.
// At most one row per user; updated by field-preserving upserts.
type Balance struct {
	UserID  uint64
	Balance float64
	Goal    float64
}
