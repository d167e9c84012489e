package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	defenserepo "github.com/yungbote/gradadmin-backend/internal/data/repos/defense"
	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	"github.com/yungbote/gradadmin-backend/internal/data/tx"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/requestdata"
)

const maxInvalidCommentLen = 1000

// transitionKey identifies one directed edge of the status graph. Any
// defined status may follow any other; the table carries side effects, not
// legality.
type transitionKey struct {
	from types.VerificationStatus
	to   types.VerificationStatus
}

type sideEffect int

const (
	// effectRecordFanout materializes the derived record graph. Attached to
	// every edge entering ready_for_finance from a different state, and to
	// nothing else, so re-saving the same status never re-runs the fan-out.
	effectRecordFanout sideEffect = iota + 1
)

var transitionEffects = buildTransitionEffects()

func buildTransitionEffects() map[transitionKey][]sideEffect {
	effects := make(map[transitionKey][]sideEffect)
	for _, from := range types.VerificationStatuses {
		if from == types.StatusReadyForFinance {
			continue
		}
		effects[transitionKey{from: from, to: types.StatusReadyForFinance}] = []sideEffect{effectRecordFanout}
	}
	return effects
}

// StatusUpdate is the caller's requested change to one verification.
type StatusUpdate struct {
	Status         types.VerificationStatus
	Remarks        string
	InvalidComment string
}

// StatusResult reports the applied transition.
type StatusResult struct {
	Verification *types.PaymentVerification
	Fanout       *FanoutSummary
}

// BulkResult reports a bulk transition: every verification that accepted the
// new status counts as updated, whether or not it actually changed state.
type BulkResult struct {
	UpdatedCount int
	FanoutRuns   int
}

// VerificationService owns the payment verification status workflow.
type VerificationService interface {
	UpdateStatus(ctx context.Context, verificationID uuid.UUID, upd StatusUpdate) (*StatusResult, error)
	UpdateStatusByDefenseRequest(ctx context.Context, defenseRequestID uuid.UUID, upd StatusUpdate) (*StatusResult, error)
	BulkUpdateStatus(ctx context.Context, verificationIDs, defenseRequestIDs []uuid.UUID, upd StatusUpdate) (*BulkResult, error)
	GetByID(ctx context.Context, verificationID uuid.UUID) (*types.PaymentVerification, error)
	GetHistory(ctx context.Context, defenseRequestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error)
	GetHonoraria(ctx context.Context, defenseRequestID uuid.UUID) ([]*types.HonorariumPayment, error)
}

type verificationService struct {
	log              *logger.Logger
	runner           tx.Runner
	verificationRepo paymentrepo.VerificationRepo
	requestRepo      defenserepo.DefenseRequestRepo
	honorariumRepo   paymentrepo.HonorariumRepo
	history          WorkflowHistoryLog
	fanout           RecordFanoutGenerator
}

func NewVerificationService(
	baseLog *logger.Logger,
	runner tx.Runner,
	verificationRepo paymentrepo.VerificationRepo,
	requestRepo defenserepo.DefenseRequestRepo,
	honorariumRepo paymentrepo.HonorariumRepo,
	history WorkflowHistoryLog,
	fanout RecordFanoutGenerator,
) VerificationService {
	return &verificationService{
		log:              baseLog.With("service", "VerificationService"),
		runner:           runner,
		verificationRepo: verificationRepo,
		requestRepo:      requestRepo,
		honorariumRepo:   honorariumRepo,
		history:          history,
		fanout:           fanout,
	}
}

func validateUpdate(upd StatusUpdate) error {
	if !upd.Status.Valid() {
		return apperr.ValidationError(fmt.Sprintf("unknown status %q", string(upd.Status)))
	}
	if upd.Status == types.StatusInvalid {
		if upd.InvalidComment == "" {
			return apperr.ValidationError("invalid_comment is required when marking a verification invalid")
		}
		if len(upd.InvalidComment) > maxInvalidCommentLen {
			return apperr.ValidationError("invalid_comment exceeds the maximum length")
		}
	}
	return nil
}

func authorize(v *types.PaymentVerification, actor *requestdata.RequestData) error {
	if v.AssignedTo == nil {
		return nil
	}
	if actor == nil || actor.UserID == uuid.Nil || *v.AssignedTo != actor.UserID {
		return apperr.AuthorizationError("verification is assigned to another user")
	}
	return nil
}

// applyStatus performs one transition inside the caller's transaction:
// authorization, field updates, history append, then any side effects the
// transition table carries for the (old, new) edge.
func (s *verificationService) applyStatus(dbc dbctx.Context, v *types.PaymentVerification, upd StatusUpdate) (*FanoutSummary, error) {
	actor := requestdata.GetRequestData(dbc.Ctx)
	if err := authorize(v, actor); err != nil {
		return nil, err
	}

	oldStatus := v.Status
	// invalid_comment lives only while the verification is invalid; any other
	// status clears it.
	invalidComment := ""
	if upd.Status == types.StatusInvalid {
		invalidComment = upd.InvalidComment
	}
	updates := map[string]interface{}{
		"status":          string(upd.Status),
		"remarks":         upd.Remarks,
		"invalid_comment": invalidComment,
	}
	assignActor := v.AssignedTo == nil && actor != nil && actor.UserID != uuid.Nil
	if assignActor {
		updates["assigned_to"] = actor.UserID
	}
	if err := s.verificationRepo.UpdateFields(dbc, v.ID, updates); err != nil {
		return nil, fmt.Errorf("update verification: %w", err)
	}
	v.Status = upd.Status
	v.Remarks = upd.Remarks
	v.InvalidComment = invalidComment
	if assignActor {
		id := actor.UserID
		v.AssignedTo = &id
	}

	details := map[string]interface{}{
		"from": string(oldStatus),
		"to":   string(upd.Status),
	}
	if upd.Remarks != "" {
		details["remarks"] = upd.Remarks
	}
	if err := s.history.Append(dbc, v.DefenseRequestID, upd.Status, upd.InvalidComment, details); err != nil {
		return nil, err
	}

	var summary *FanoutSummary
	for _, effect := range transitionEffects[transitionKey{from: oldStatus, to: upd.Status}] {
		switch effect {
		case effectRecordFanout:
			req, err := s.requestRepo.GetByID(dbc, v.DefenseRequestID)
			if err != nil {
				return nil, fmt.Errorf("load defense request: %w", err)
			}
			summary, err = s.fanout.Generate(dbc, req)
			if err != nil {
				return nil, err
			}
		}
	}
	return summary, nil
}

func (s *verificationService) UpdateStatus(ctx context.Context, verificationID uuid.UUID, upd StatusUpdate) (*StatusResult, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}
	result := &StatusResult{}
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		v, err := s.verificationRepo.GetByID(dbc, verificationID)
		if err != nil {
			return err
		}
		summary, err := s.applyStatus(dbc, v, upd)
		if err != nil {
			return err
		}
		result.Verification = v
		result.Fanout = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *verificationService) UpdateStatusByDefenseRequest(ctx context.Context, defenseRequestID uuid.UUID, upd StatusUpdate) (*StatusResult, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}
	result := &StatusResult{}
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		v, err := s.verificationRepo.FirstOrCreateByDefenseRequestID(dbc, defenseRequestID)
		if err != nil {
			return err
		}
		summary, err := s.applyStatus(dbc, v, upd)
		if err != nil {
			return err
		}
		result.Verification = v
		result.Fanout = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkUpdateStatus applies one status to many verifications, each in its own
// transaction so a late failure does not undo earlier members. Fan-out runs
// only for members that actually enter ready_for_finance with this call.
func (s *verificationService) BulkUpdateStatus(ctx context.Context, verificationIDs, defenseRequestIDs []uuid.UUID, upd StatusUpdate) (*BulkResult, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}
	result := &BulkResult{}

	for _, id := range verificationIDs {
		err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
			v, err := s.verificationRepo.GetByID(dbc, id)
			if err != nil {
				return err
			}
			summary, err := s.applyStatus(dbc, v, upd)
			if err != nil {
				return err
			}
			result.UpdatedCount++
			if summary != nil {
				result.FanoutRuns++
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("bulk update verification %s: %w", id, err)
		}
	}

	for _, requestID := range defenseRequestIDs {
		err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
			v, err := s.verificationRepo.FirstOrCreateByDefenseRequestID(dbc, requestID)
			if err != nil {
				return err
			}
			summary, err := s.applyStatus(dbc, v, upd)
			if err != nil {
				return err
			}
			result.UpdatedCount++
			if summary != nil {
				result.FanoutRuns++
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("bulk update for defense request %s: %w", requestID, err)
		}
	}

	return result, nil
}

func (s *verificationService) GetByID(ctx context.Context, verificationID uuid.UUID) (*types.PaymentVerification, error) {
	return s.verificationRepo.GetByID(dbctx.Context{Ctx: ctx}, verificationID)
}

func (s *verificationService) GetHistory(ctx context.Context, defenseRequestID uuid.UUID) ([]*types.WorkflowHistoryEntry, error) {
	return s.history.GetByDefenseRequestID(dbctx.Context{Ctx: ctx}, defenseRequestID)
}

func (s *verificationService) GetHonoraria(ctx context.Context, defenseRequestID uuid.UUID) ([]*types.HonorariumPayment, error) {
	return s.honorariumRepo.GetByDefenseRequestID(dbctx.Context{Ctx: ctx}, defenseRequestID)
}
