package payment

import (
	"time"

	"github.com/google/uuid"
)

// HonorariumPayment is one committee member's honorarium for one defense.
// Amount is copied from the rate table at generation time so later rate
// edits do not rewrite history.
type HonorariumPayment struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DefenseRequestID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_honorarium_request_panelist_role,priority:1" json:"defense_request_id"`
	PanelistName     string    `gorm:"column:panelist_name;not null;uniqueIndex:idx_honorarium_request_panelist_role,priority:2" json:"panelist_name"`
	Role             string    `gorm:"column:role;not null;uniqueIndex:idx_honorarium_request_panelist_role,priority:3" json:"role"`
	Amount           float64   `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	PaymentStatus    string    `gorm:"column:payment_status;not null;default:'pending'" json:"payment_status"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (HonorariumPayment) TableName() string { return "honorarium_payment" }
