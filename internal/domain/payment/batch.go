package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentBatch is a named grouping of payment verifications handed to
// finance together.
type PaymentBatch struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Status    string         `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (PaymentBatch) TableName() string { return "payment_batch" }
