package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AnswerList stores the submitted answer sequence as a JSON array so the
// full submission survives as-is, including entries beyond the question
// count.
type AnswerList []bool

func (a AnswerList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerList) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for AnswerList: %T", value)
	}
}

// Submission is one scored quiz attempt. A user may submit any number of
// times; each attempt is scored independently and never updated.
type Submission struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID  string     `gorm:"type:uuid;not null" json:"tenant_id"`
	UserID    string     `gorm:"type:uuid;not null" json:"user_id"`
	Answers   AnswerList `gorm:"type:jsonb;not null" json:"answers"`
	Score     int        `gorm:"not null" json:"score"`
	CreatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant    *Tenant    `gorm:"foreignKey:TenantID" json:"-"`
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
}

func (Submission) TableName() string {
	return "quiz_submissions"
}
