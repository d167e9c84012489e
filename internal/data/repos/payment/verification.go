package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type VerificationRepo interface {
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.PaymentVerification, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PaymentVerification, error)
	GetByDefenseRequestIDs(dbc dbctx.Context, requestIDs []uuid.UUID) ([]*types.PaymentVerification, error)
	GetByBatchID(dbc dbctx.Context, batchID uuid.UUID) ([]*types.PaymentVerification, error)
	FirstOrCreateByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) (*types.PaymentVerification, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	AssignBatch(dbc dbctx.Context, ids []uuid.UUID, batchID uuid.UUID) (int64, error)
}

type verificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVerificationRepo(db *gorm.DB, baseLog *logger.Logger) VerificationRepo {
	return &verificationRepo{db: db, log: baseLog.With("repo", "VerificationRepo")}
}

func (r *verificationRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.PaymentVerification, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PaymentVerification
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

func (r *verificationRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PaymentVerification, error) {
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *verificationRepo) GetByDefenseRequestIDs(dbc dbctx.Context, requestIDs []uuid.UUID) ([]*types.PaymentVerification, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PaymentVerification
	if len(requestIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("defense_request_id IN ?", requestIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *verificationRepo) GetByBatchID(dbc dbctx.Context, batchID uuid.UUID) ([]*types.PaymentVerification, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PaymentVerification
	if batchID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FirstOrCreateByDefenseRequestID returns the verification for a request,
// creating a pending one when none exists yet. The unique index on
// defense_request_id makes concurrent creates converge on one row.
func (r *verificationRepo) FirstOrCreateByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) (*types.PaymentVerification, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	row := &types.PaymentVerification{
		ID:               uuid.New(),
		DefenseRequestID: requestID,
		Status:           types.StatusPending,
	}
	res := t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "defense_request_id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing types.PaymentVerification
		if err := t.WithContext(dbc.Ctx).
			Where("defense_request_id = ?", requestID).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return row, nil
}

func (r *verificationRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return t.WithContext(dbc.Ctx).
		Model(&types.PaymentVerification{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *verificationRepo) AssignBatch(dbc dbctx.Context, ids []uuid.UUID, batchID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 || batchID == uuid.Nil {
		return 0, nil
	}
	res := t.WithContext(dbc.Ctx).
		Model(&types.PaymentVerification{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"batch_id":   batchID,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
