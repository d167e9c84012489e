package defense

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type DefenseRequestRepo interface {
	Create(dbc dbctx.Context, rows []*types.DefenseRequest) ([]*types.DefenseRequest, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.DefenseRequest, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.DefenseRequest, error)
}

type defenseRequestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDefenseRequestRepo(db *gorm.DB, baseLog *logger.Logger) DefenseRequestRepo {
	return &defenseRequestRepo{db: db, log: baseLog.With("repo", "DefenseRequestRepo")}
}

func (r *defenseRequestRepo) Create(dbc dbctx.Context, rows []*types.DefenseRequest) ([]*types.DefenseRequest, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.DefenseRequest{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *defenseRequestRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.DefenseRequest, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.DefenseRequest
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *defenseRequestRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.DefenseRequest, error) {
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}
