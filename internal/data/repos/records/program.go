package records

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type ProgramRecordRepo interface {
	FindOrCreate(dbc dbctx.Context, row *types.ProgramRecord) (*types.ProgramRecord, error)
}

type programRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgramRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgramRecordRepo {
	return &programRecordRepo{db: db, log: baseLog.With("repo", "ProgramRecordRepo")}
}

// FindOrCreate inserts under the (program_name, defense_type,
// program_category) key and falls back to the existing row on conflict, so
// concurrent generators converge on the same record.
func (r *programRecordRepo) FindOrCreate(dbc dbctx.Context, row *types.ProgramRecord) (*types.ProgramRecord, error) {
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
				{Name: "program_name"},
				{Name: "defense_type"},
				{Name: "program_category"},
			},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing types.ProgramRecord
		if err := t.WithContext(dbc.Ctx).
			Where("program_name = ? AND defense_type = ? AND program_category = ?",
				row.ProgramName, row.DefenseType, row.ProgramCategory).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return row, nil
}
