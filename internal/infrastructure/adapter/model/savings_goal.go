package model

import (
	"time"
)

// SavingsGoal represents the database model for the per-user goal tracker
type SavingsGoal struct {
	ID       uint64    `gorm:"primaryKey"`
	UserID   uint64    `gorm:"uniqueIndex;not null"`
	Target   float64   `gorm:"not null;default:0"`
	Achieved int       `gorm:"not null;default:0"`
	SetDate  time.Time `gorm:"not null"`
}

// TableName specifies the table name for SavingsGoal
func (SavingsGoal) TableName() string {
	return "savings_goals"
}
