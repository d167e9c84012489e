package defense

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

// WorkflowHistoryRepo is append-only: there is no update or delete path on
// history rows.
type WorkflowHistoryRepo interface {
	Append(dbc dbctx.Context, entry *types.WorkflowHistoryEntry) error
	GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error)
	NextSeq(dbc dbctx.Context, requestID uuid.UUID) (int64, error)
}

type workflowHistoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkflowHistoryRepo(db *gorm.DB, baseLog *logger.Logger) WorkflowHistoryRepo {
	return &workflowHistoryRepo{db: db, log: baseLog.With("repo", "WorkflowHistoryRepo")}
}

func (r *workflowHistoryRepo) Append(dbc dbctx.Context, entry *types.WorkflowHistoryEntry) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if entry == nil || entry.DefenseRequestID == uuid.Nil {
		return nil
	}
	return t.WithContext(dbc.Ctx).Create(entry).Error
}

func (r *workflowHistoryRepo) GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.WorkflowHistoryEntry
	if requestID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("defense_request_id = ?", requestID).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *workflowHistoryRepo) NextSeq(dbc dbctx.Context, requestID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var maxSeq int64
	err := t.WithContext(dbc.Ctx).
		Model(&types.WorkflowHistoryEntry{}).
		Where("defense_request_id = ?", requestID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}
