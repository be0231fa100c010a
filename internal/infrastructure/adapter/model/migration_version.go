package model

import (
	"time"
)

// MigrationVersion tracks applied schema versions
type MigrationVersion struct {
	ID        uint64    `gorm:"primaryKey"`
	Version   string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string
}

// TableName specifies the table name for MigrationVersion
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
