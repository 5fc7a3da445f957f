package domain

import (
	"time"
)

// Question is one true/false question in a tenant's quiz. Position records
// insertion order and shares a unique index with TenantID. Besides giving
// reads a stable order, that index is what makes the question set write-once
// under concurrency: two first-time batch inserts for the same tenant both
// start at position 0 and only one can commit.
type Question struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_questions_tenant_position" json:"tenant_id"`
	Position  int       `gorm:"not null;uniqueIndex:idx_questions_tenant_position" json:"position"`
	Text      string    `gorm:"type:text;not null" json:"question"`
	Answer    bool      `gorm:"not null" json:"answer"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
