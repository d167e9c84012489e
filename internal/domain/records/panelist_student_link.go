package records

import (
	"time"

	"github.com/google/uuid"
)

// PanelistStudentLink is the pivot marking that a panelist sat on a student's
// defense. Existence is the whole contract; it carries no other state.
type PanelistStudentLink struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PanelistRecordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_panelist_student_link_key,priority:1" json:"panelist_record_id"`
	StudentRecordID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_panelist_student_link_key,priority:2" json:"student_record_id"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PanelistStudentLink) TableName() string { return "panelist_student_link" }
