package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/requestdata"
)

// ExportRow is one line of a batch export.
type ExportRow struct {
	VerificationID   uuid.UUID                `json:"id"`
	DefenseRequestID uuid.UUID                `json:"defense_request_id"`
	Status           types.VerificationStatus `json:"status"`
	Remarks          string                   `json:"remarks"`
}

// BatchService groups verifications into named batches for handoff to
// finance. Assignment has no status side effects.
type BatchService interface {
	CreateBatch(ctx context.Context, name string) (*types.PaymentBatch, error)
	AddToBatch(ctx context.Context, batchID uuid.UUID, verificationIDs []uuid.UUID) (int64, error)
	GetBatch(ctx context.Context, batchID uuid.UUID) (*types.PaymentBatch, []*types.PaymentVerification, error)
	ExportBatch(ctx context.Context, batchID uuid.UUID) ([]ExportRow, error)
}

type batchService struct {
	log              *logger.Logger
	batchRepo        paymentrepo.BatchRepo
	verificationRepo paymentrepo.VerificationRepo
}

func NewBatchService(
	baseLog *logger.Logger,
	batchRepo paymentrepo.BatchRepo,
	verificationRepo paymentrepo.VerificationRepo,
) BatchService {
	return &batchService{
		log:              baseLog.With("service", "BatchService"),
		batchRepo:        batchRepo,
		verificationRepo: verificationRepo,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, name string) (*types.PaymentBatch, error) {
	if name == "" {
		return nil, apperr.ValidationError("batch name is required")
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.AuthorizationError("no authenticated actor")
	}
	batch := &types.PaymentBatch{
		Name:      name,
		Status:    "pending",
		CreatedBy: rd.UserID,
	}
	if rd.DisplayName != "" {
		meta, err := json.Marshal(map[string]string{"created_by_name": rd.DisplayName})
		if err != nil {
			return nil, fmt.Errorf("marshal batch metadata: %w", err)
		}
		batch.Metadata = datatypes.JSON(meta)
	}
	if _, err := s.batchRepo.Create(dbctx.Context{Ctx: ctx}, batch); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	return batch, nil
}

func (s *batchService) AddToBatch(ctx context.Context, batchID uuid.UUID, verificationIDs []uuid.UUID) (int64, error) {
	dbc := dbctx.Context{Ctx: ctx}
	if _, err := s.batchRepo.GetByID(dbc, batchID); err != nil {
		return 0, err
	}
	count, err := s.verificationRepo.AssignBatch(dbc, verificationIDs, batchID)
	if err != nil {
		return 0, fmt.Errorf("assign verifications to batch: %w", err)
	}
	return count, nil
}

func (s *batchService) GetBatch(ctx context.Context, batchID uuid.UUID) (*types.PaymentBatch, []*types.PaymentVerification, error) {
	dbc := dbctx.Context{Ctx: ctx}
	batch, err := s.batchRepo.GetByID(dbc, batchID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.verificationRepo.GetByBatchID(dbc, batchID)
	if err != nil {
		return nil, nil, err
	}
	return batch, members, nil
}

func (s *batchService) ExportBatch(ctx context.Context, batchID uuid.UUID) ([]ExportRow, error) {
	_, members, err := s.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, 0, len(members))
	for _, v := range members {
		rows = append(rows, ExportRow{
			VerificationID:   v.ID,
			DefenseRequestID: v.DefenseRequestID,
			Status:           v.Status,
			Remarks:          v.Remarks,
		})
	}
	return rows, nil
}

// WriteExportCSV writes rows as the flat file finance consumes.
func WriteExportCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Defense Request", "Status", "Remarks"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.VerificationID.String(),
			row.DefenseRequestID.String(),
			string(row.Status),
			row.Remarks,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
