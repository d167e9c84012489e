package records

import (
	"time"

	"github.com/google/uuid"
)

// StudentRecord is the summary-graph node for the student of one defense
// request.
type StudentRecord struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DefenseRequestID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"defense_request_id"`
	ProgramRecordID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"program_record_id"`
	ProgramRecord    *ProgramRecord `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProgramRecordID;references:ID" json:"program_record,omitempty"`
	StudentName      string         `gorm:"column:student_name;not null" json:"student_name"`
	ThesisTitle      string         `gorm:"column:thesis_title;type:text" json:"thesis_title"`
	DefenseDate      *time.Time     `gorm:"column:defense_date" json:"defense_date,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (StudentRecord) TableName() string { return "student_record" }
