package model

import (
	"time"
)

// Expense represents the database model for expenses.
// UserID carries no database-level foreign key constraint; referential
// integrity to users is advisory, matching the storage schema this service
// replaced.
type Expense struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"index;not null"`
	Category    string    `gorm:"not null"`
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"default:''"`
	Date        time.Time `gorm:"index;not null"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
