package defense

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkflowHistoryEntry is one row of the append-only audit trail on a defense
// request. Rows are keyed by a per-request monotonic sequence number; nothing
// in the codebase updates or deletes them.
type WorkflowHistoryEntry struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	DefenseRequestID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_workflow_history_request_seq,priority:1" json:"defense_request_id"`
	Seq              int64          `gorm:"column:seq;not null;uniqueIndex:idx_workflow_history_request_seq,priority:2" json:"seq"`
	EventType        string         `gorm:"column:event_type;not null" json:"event_type"`
	Status           string         `gorm:"column:status;not null" json:"status"`
	ActorID          uuid.UUID      `gorm:"type:uuid;column:actor_id" json:"actor_id"`
	ActorName        string         `gorm:"column:actor_name" json:"actor_name"`
	Comment          string         `gorm:"column:comment;type:text" json:"comment,omitempty"`
	Details          datatypes.JSON `gorm:"column:details;type:jsonb" json:"details,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (WorkflowHistoryEntry) TableName() string { return "workflow_history_entry" }
