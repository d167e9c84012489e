package records

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type PanelistStudentLinkRepo interface {
	Upsert(dbc dbctx.Context, panelistRecordID, studentRecordID uuid.UUID) error
	GetByStudentRecordID(dbc dbctx.Context, studentRecordID uuid.UUID) ([]*types.PanelistStudentLink, error)
}

type panelistStudentLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPanelistStudentLinkRepo(db *gorm.DB, baseLog *logger.Logger) PanelistStudentLinkRepo {
	return &panelistStudentLinkRepo{db: db, log: baseLog.With("repo", "PanelistStudentLinkRepo")}
}

func (r *panelistStudentLinkRepo) Upsert(dbc dbctx.Context, panelistRecordID, studentRecordID uuid.UUID) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if panelistRecordID == uuid.Nil || studentRecordID == uuid.Nil {
		return nil
	}
	row := &types.PanelistStudentLink{
		ID:               uuid.New(),
		PanelistRecordID: panelistRecordID,
		StudentRecordID:  studentRecordID,
	}
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *panelistStudentLinkRepo) GetByStudentRecordID(dbc dbctx.Context, studentRecordID uuid.UUID) ([]*types.PanelistStudentLink, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PanelistStudentLink
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
