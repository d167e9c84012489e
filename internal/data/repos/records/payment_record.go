package records

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type PaymentRecordRepo interface {
	UpsertByPanelistStudent(dbc dbctx.Context, row *types.PaymentRecord) error
	GetByStudentRecordID(dbc dbctx.Context, studentRecordID uuid.UUID) ([]*types.PaymentRecord, error)
}

type paymentRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaymentRecordRepo(db *gorm.DB, baseLog *logger.Logger) PaymentRecordRepo {
	return &paymentRecordRepo{db: db, log: baseLog.With("repo", "PaymentRecordRepo")}
}

func (r *paymentRecordRepo) UpsertByPanelistStudent(dbc dbctx.Context, row *types.PaymentRecord) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.PanelistRecordID == uuid.Nil || row.StudentRecordID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "panelist_record_id"},
				{Name: "student_record_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount",
				"role",
				"defense_date",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *paymentRecordRepo) GetByStudentRecordID(dbc dbctx.Context, studentRecordID uuid.UUID) ([]*types.PaymentRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PaymentRecord
	if studentRecordID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("student_record_id = ?", studentRecordID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
