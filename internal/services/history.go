package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	defenserepo "github.com/yungbote/gradadmin-backend/internal/data/repos/defense"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/requestdata"
)

// WorkflowHistoryLog appends audit entries for status-changing operations.
// The append shares the caller's transaction: a failed append rolls the
// status change back with it, so the audit trail can never silently lag the
// state it describes.
type WorkflowHistoryLog interface {
	Append(dbc dbctx.Context, requestID uuid.UUID, status types.VerificationStatus, comment string, details map[string]interface{}) error
	GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error)
}

type workflowHistoryLog struct {
	log         *logger.Logger
	historyRepo defenserepo.WorkflowHistoryRepo
}

func NewWorkflowHistoryLog(baseLog *logger.Logger, historyRepo defenserepo.WorkflowHistoryRepo) WorkflowHistoryLog {
	return &workflowHistoryLog{
		log:         baseLog.With("service", "WorkflowHistoryLog"),
		historyRepo: historyRepo,
	}
}

func (s *workflowHistoryLog) Append(dbc dbctx.Context, requestID uuid.UUID, status types.VerificationStatus, comment string, details map[string]interface{}) error {
	entry := &types.WorkflowHistoryEntry{
		DefenseRequestID: requestID,
		EventType:        status.EventLabel(),
		Status:           string(status),
	}
	if status == types.StatusInvalid {
		entry.Comment = comment
	}
	if rd := requestdata.GetRequestData(dbc.Ctx); rd != nil {
		entry.ActorID = rd.UserID
		entry.ActorName = rd.DisplayName
	}
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshal history details: %w", err)
		}
		entry.Details = datatypes.JSON(raw)
	}

	// Two writers can race to the same seq; the unique index on
	// (defense_request_id, seq) catches the loser, which recomputes once.
	for attempt := 0; attempt < 2; attempt++ {
		seq, err := s.historyRepo.NextSeq(dbc, requestID)
		if err != nil {
			return fmt.Errorf("next history seq: %w", err)
		}
		entry.Seq = seq
		err = s.appendOnce(dbc, entry)
		if err == nil {
			return nil
		}
		if !apperr.IsUniqueViolation(err) || attempt == 1 {
			return fmt.Errorf("append workflow history: %w", err)
		}
		s.log.Warn("History seq collision, retrying",
			"defense_request_id", requestID, "seq", seq)
	}
	return nil
}

// appendOnce runs one insert attempt. Inside a caller transaction the insert
// gets its own savepoint, so a unique-violation failure rolls back to the
// savepoint instead of aborting the whole transaction and the retry can
// still execute.
func (s *workflowHistoryLog) appendOnce(dbc dbctx.Context, entry *types.WorkflowHistoryEntry) error {
	if dbc.Tx == nil {
		return s.historyRepo.Append(dbc, entry)
	}
	return dbc.Tx.Transaction(func(t *gorm.DB) error {
		return s.historyRepo.Append(dbctx.Context{Ctx: dbc.Ctx, Tx: t}, entry)
	})
}

func (s *workflowHistoryLog) GetByDefenseRequestID(dbc dbctx.Context, requestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error) {
	return s.historyRepo.GetByDefenseRequestID(dbc, requestID)
}
