package model

// TotalBalance represents the database model for the per-user balance row
type TotalBalance struct {
	UserID  uint64  `gorm:"primaryKey;autoIncrement:false"`
	Balance float64 `gorm:"not null;default:0"`
	Goal    float64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for TotalBalance
func (TotalBalance) TableName() string {
	return "total_balances"
}
