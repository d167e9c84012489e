package defense

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefenseRequest is the portal-owned record of a scheduled thesis or
// dissertation defense. The wider request lifecycle (submission, scheduling,
// document generation) is managed elsewhere; this service only reads it and
// appends workflow history.
type DefenseRequest struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	FirstName  string `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName string `gorm:"column:middle_name" json:"middle_name,omitempty"`
	LastName   string `gorm:"column:last_name;not null" json:"last_name"`

	ProgramName string     `gorm:"column:program_name;not null;index" json:"program_name"`
	DefenseType string     `gorm:"column:defense_type;not null" json:"defense_type"`
	DefenseDate *time.Time `gorm:"column:defense_date" json:"defense_date,omitempty"`
	ThesisTitle string     `gorm:"column:thesis_title;type:text" json:"thesis_title"`

	AdviserName     string `gorm:"column:adviser_name" json:"adviser_name,omitempty"`
	ChairpersonName string `gorm:"column:chairperson_name" json:"chairperson_name,omitempty"`
	Panelist1Name   string `gorm:"column:panelist1_name" json:"panelist1_name,omitempty"`
	Panelist2Name   string `gorm:"column:panelist2_name" json:"panelist2_name,omitempty"`
	Panelist3Name   string `gorm:"column:panelist3_name" json:"panelist3_name,omitempty"`
	Panelist4Name   string `gorm:"column:panelist4_name" json:"panelist4_name,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DefenseRequest) TableName() string { return "defense_request" }

// StudentName builds the display name from the stored name parts.
func (r *DefenseRequest) StudentName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.FirstName, r.MiddleName, r.LastName} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// PanelistNames returns the committee panelist slots in slot order, empty
// slots included so callers keep the slot number.
func (r *DefenseRequest) PanelistNames() [4]string {
	return [4]string{r.Panelist1Name, r.Panelist2Name, r.Panelist3Name, r.Panelist4Name}
}
