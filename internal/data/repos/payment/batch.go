package payment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type BatchRepo interface {
	Create(dbc dbctx.Context, row *types.PaymentBatch) (*types.PaymentBatch, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PaymentBatch, error)
}

type batchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBatchRepo(db *gorm.DB, baseLog *logger.Logger) BatchRepo {
	return &batchRepo{db: db, log: baseLog.With("repo", "BatchRepo")}
}

func (r *batchRepo) Create(dbc dbctx.Context, row *types.PaymentBatch) (*types.PaymentBatch, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *batchRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PaymentBatch, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out types.PaymentBatch
	if err := t.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
