package payment

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/google/uuid"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

// RateRepo reads the honorarium rate table. Upsert exists only for seeding;
// nothing in the request path writes rates.
type RateRepo interface {
	GetByLevelAndType(dbc dbctx.Context, level types.ProgramLevel, defenseType types.DefenseType) ([]*types.PaymentRate, error)
	Upsert(dbc dbctx.Context, row *types.PaymentRate) error
}

type rateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRateRepo(db *gorm.DB, baseLog *logger.Logger) RateRepo {
	return &rateRepo{db: db, log: baseLog.With("repo", "RateRepo")}
}

func (r *rateRepo) GetByLevelAndType(dbc dbctx.Context, level types.ProgramLevel, defenseType types.DefenseType) ([]*types.PaymentRate, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PaymentRate
	if err := t.WithContext(dbc.Ctx).
		Where("program_level = ? AND defense_type = ?", string(level), string(defenseType)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rateRepo) Upsert(dbc dbctx.Context, row *types.PaymentRate) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "program_level"},
				{Name: "defense_type"},
				{Name: "role"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount",
				"updated_at",
			}),
		}).
		Create(row).Error
}
