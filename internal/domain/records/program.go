package records

import (
	"time"

	"github.com/google/uuid"
)

// ProgramRecord is the summary-graph node for one program + defense type
// combination, categorized by rate tier.
type ProgramRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProgramName     string    `gorm:"column:program_name;not null;uniqueIndex:idx_program_record_key,priority:1" json:"program_name"`
	DefenseType     string    `gorm:"column:defense_type;not null;uniqueIndex:idx_program_record_key,priority:2" json:"defense_type"`
	ProgramCategory string    `gorm:"column:program_category;not null;uniqueIndex:idx_program_record_key,priority:3" json:"program_category"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProgramRecord) TableName() string { return "program_record" }
