package records

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type PanelistRecordRepo interface {
	FindOrCreate(dbc dbctx.Context, row *types.PanelistRecord) (*types.PanelistRecord, error)
	GetByProgramRecordID(dbc dbctx.Context, programRecordID uuid.UUID) ([]*types.PanelistRecord, error)
}

type panelistRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPanelistRecordRepo(db *gorm.DB, baseLog *logger.Logger) PanelistRecordRepo {
	return &panelistRecordRepo{db: db, log: baseLog.With("repo", "PanelistRecordRepo")}
}

func (r *panelistRecordRepo) FindOrCreate(dbc dbctx.Context, row *types.PanelistRecord) (*types.PanelistRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "program_record_id"},
				{Name: "panelist_name"},
				{Name: "role"},
			},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing types.PanelistRecord
		if err := t.WithContext(dbc.Ctx).
			Where("program_record_id = ? AND panelist_name = ? AND role = ?",
				row.ProgramRecordID, row.PanelistName, row.Role).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return row, nil
}

func (r *panelistRecordRepo) GetByProgramRecordID(dbc dbctx.Context, programRecordID uuid.UUID) ([]*types.PanelistRecord, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PanelistRecord
	if programRecordID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("program_record_id = ?", programRecordID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
