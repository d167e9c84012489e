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

type StudentRecordRepo interface {
	UpsertByDefenseRequestID(dbc dbctx.Context, row *types.StudentRecord) (*types.StudentRecord, error)
}

type studentRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRecordRepo(db *gorm.DB, baseLog *logger.Logger) StudentRecordRepo {
	return &studentRecordRepo{db: db, log: baseLog.With("repo", "StudentRecordRepo")}
}

func (r *studentRecordRepo) UpsertByDefenseRequestID(dbc dbctx.Context, row *types.StudentRecord) (*types.StudentRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.DefenseRequestID == uuid.Nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	if err := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "defense_request_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"program_record_id",
				"student_name",
				"thesis_title",
				"defense_date",
				"updated_at",
			}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}
	// Re-read so the caller holds the surviving row's ID after a conflict.
	var existing types.StudentRecord
	if err := t.WithContext(dbc.Ctx).
		Where("defense_request_id = ?", row.DefenseRequestID).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
