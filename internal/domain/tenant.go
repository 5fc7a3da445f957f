package domain

import (
	"time"
)

// Tenant is an isolated namespace. Users, questions and submissions all
// belong to exactly one tenant. Name keeps the trimmed, case-preserved form
// the caller registered; Slug holds the lowercased form and carries the
// unique index, so name uniqueness is case-insensitive at the storage layer.
type Tenant struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Slug        string    `gorm:"type:text;not null;uniqueIndex" json:"-"`
	DisplayName string    `gorm:"type:text;not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
