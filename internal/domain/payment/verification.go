package payment

import (
	"time"

	"github.com/google/uuid"
)

// PaymentVerification tracks honorarium payment verification for exactly one
// defense request. Created lazily on the first status change and never
// deleted.
type PaymentVerification struct {
	ID               uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DefenseRequestID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"defense_request_id"`
	Status           VerificationStatus `gorm:"column:status;not null;default:'pending';index" json:"status"`
	Remarks          string             `gorm:"column:remarks;type:text" json:"remarks,omitempty"`
	InvalidComment   string             `gorm:"column:invalid_comment;type:text" json:"invalid_comment,omitempty"`
	AssignedTo       *uuid.UUID         `gorm:"type:uuid;column:assigned_to;index" json:"assigned_to,omitempty"`
	BatchID          *uuid.UUID         `gorm:"type:uuid;column:batch_id;index" json:"batch_id,omitempty"`
	CreatedAt        time.Time          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"not null;default:now()" json:"updated_at"`
}

func (PaymentVerification) TableName() string { return "payment_verification" }
