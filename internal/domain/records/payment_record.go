package records

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecord carries the honorarium owed by one student's defense to one
// panelist, in the summary graph.
type PaymentRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PanelistRecordID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_payment_record_key,priority:1" json:"panelist_record_id"`
	PanelistRecord   *PanelistRecord `gorm:"constraint:OnDelete:CASCADE;foreignKey:PanelistRecordID;references:ID" json:"panelist_record,omitempty"`
	StudentRecordID  uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_payment_record_key,priority:2" json:"student_record_id"`
	StudentRecord    *StudentRecord  `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentRecordID;references:ID" json:"student_record,omitempty"`
	Amount           float64         `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Role             string          `gorm:"column:role;not null" json:"role"`
	DefenseDate      *time.Time      `gorm:"column:defense_date" json:"defense_date,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (PaymentRecord) TableName() string { return "payment_record" }
