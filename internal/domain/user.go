package domain

import (
	"time"
)

// User is a tenant-scoped account. Username keeps the trimmed form the
// caller signed up with; UsernameKey holds the lowercased form and shares a
// composite unique index with TenantID, so the same username may exist in
// different tenants but only once within one.
type User struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_users_username_tenant" json:"tenant_id"`
	Username       string    `gorm:"type:text;not null" json:"username"`
	UsernameKey    string    `gorm:"type:text;not null;uniqueIndex:idx_users_username_tenant" json:"-"`
	PasswordDigest string    `gorm:"type:text;not null" json:"-"`
	CreatedAt      time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant         *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
