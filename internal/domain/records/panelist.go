package records

import (
	"time"

	"github.com/google/uuid"
)

// PanelistRecord is the summary-graph node for one person serving a panel
// role within a program. Advisers are paid but deliberately not modeled here.
type PanelistRecord struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProgramRecordID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_panelist_record_key,priority:1" json:"program_record_id"`
	ProgramRecord   *ProgramRecord `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProgramRecordID;references:ID" json:"program_record,omitempty"`
	PanelistName    string         `gorm:"column:panelist_name;not null;uniqueIndex:idx_panelist_record_key,priority:2" json:"panelist_name"`
	Role            string         `gorm:"column:role;not null;uniqueIndex:idx_panelist_record_key,priority:3" json:"role"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (PanelistRecord) TableName() string { return "panelist_record" }
