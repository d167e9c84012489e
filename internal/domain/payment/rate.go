package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProgramLevel is the rate-table tier of an academic program. The table only
// has two tiers: every non-doctorate program, bachelor programs included,
// bills at the Masteral tier.
type ProgramLevel string

const (
	LevelMasteral  ProgramLevel = "Masteral"
	LevelDoctorate ProgramLevel = "Doctorate"
)

// DefenseType is the normalized defense stage used as a rate-table key.
type DefenseType string

const (
	DefenseProposal DefenseType = "Proposal"
	DefensePreFinal DefenseType = "Pre-Final"
	DefenseFinal    DefenseType = "Final"
	DefenseUnknown  DefenseType = ""
)

// RateRole is a committee role label as keyed in the rate table.
type RateRole string

const (
	RoleAdviser     RateRole = "Adviser"
	RolePanelChair  RateRole = "Panel Chair"
	RolePanelMember RateRole = "Panel Member"
)

// PanelMemberRole returns the numbered panel member role for slot n (1-based).
func PanelMemberRole(n int) RateRole {
	return RateRole(fmt.Sprintf("Panel Member %d", n))
}

// PaymentRate is a read-only reference row mapping
// (program_level, defense_type, role) to an honorarium amount.
type PaymentRate struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProgramLevel string    `gorm:"column:program_level;not null;uniqueIndex:idx_payment_rate_key,priority:1" json:"program_level"`
	DefenseType  string    `gorm:"column:defense_type;not null;uniqueIndex:idx_payment_rate_key,priority:2" json:"defense_type"`
	Role         string    `gorm:"column:role;not null;uniqueIndex:idx_payment_rate_key,priority:3" json:"role"`
	Amount       float64   `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PaymentRate) TableName() string { return "payment_rate" }
