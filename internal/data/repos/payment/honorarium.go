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

type HonorariumRepo interface {
	UpsertByRequestPanelistRole(dbc dbctx.Context, row *types.HonorariumPayment) error
	GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.HonorariumPayment, error)
}

type honorariumRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHonorariumRepo(db *gorm.DB, baseLog *logger.Logger) HonorariumRepo {
	return &honorariumRepo{db: db, log: baseLog.With("repo", "HonorariumRepo")}
}

// UpsertByRequestPanelistRole refreshes the amount of an existing row instead
// of duplicating it; payment_status survives regeneration.
func (r *honorariumRepo) UpsertByRequestPanelistRole(dbc dbctx.Context, row *types.HonorariumPayment) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.DefenseRequestID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.PaymentStatus == "" {
		row.PaymentStatus = "pending"
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "defense_request_id"},
				{Name: "panelist_name"},
				{Name: "role"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *honorariumRepo) GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.HonorariumPayment, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.HonorariumPayment
	if requestID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("defense_request_id = ?", requestID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
