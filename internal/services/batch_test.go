package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
)

func newBatchEnv(t *testing.T, txDB *gorm.DB) BatchService {
	t.Helper()
	log := testutil.Logger(t)
	return NewBatchService(log, paymentrepo.NewBatchRepo(txDB, log), paymentrepo.NewVerificationRepo(txDB, log))
}

func TestBatchLifecycle(t *testing.T) {
	db := testutil.DB(t)
	txDB := testutil.Tx(t, db)
	ctx, actorID := actorContext("Dean Office")

	reqA := testutil.SeedDefenseRequest(t, ctx, txDB, "Master of Arts", "Final")
	reqB := testutil.SeedDefenseRequest(t, ctx, txDB, "Master of Arts", "Final")
	vA := testutil.SeedVerification(t, ctx, txDB, reqA.ID, types.StatusReadyForFinance)
	vB := testutil.SeedVerification(t, ctx, txDB, reqB.ID, types.StatusReadyForFinance)

	svc := newBatchEnv(t, txDB)

	batch, err := svc.CreateBatch(ctx, "March 2025 honoraria")
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if batch.Status != "pending" {
		t.Fatalf("new batch status = %q, want pending", batch.Status)
	}
	if batch.CreatedBy != actorID {
		t.Fatal("batch creator should be the authenticated actor")
	}

	count, err := svc.AddToBatch(ctx, batch.ID, []uuid.UUID{vA.ID, vB.ID})
	if err != nil {
		t.Fatalf("AddToBatch: %v", err)
	}
	if count != 2 {
		t.Fatalf("AddToBatch count = %d, want 2", count)
	}

	got, members, err := svc.GetBatch(ctx, batch.ID)
	if err != nil {
		t.Fatalf("GetBatch: %v", err)
	}
	if got.ID != batch.ID || len(members) != 2 {
		t.Fatalf("GetBatch returned %d members, want 2", len(members))
	}

	rows, err := svc.ExportBatch(ctx, batch.ID)
	if err != nil {
		t.Fatalf("ExportBatch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("export rows = %d, want 2", len(rows))
	}
}

func TestCreateBatchValidation(t *testing.T) {
	db := testutil.DB(t)
	txDB := testutil.Tx(t, db)
	svc := newBatchEnv(t, txDB)

	ctx, _ := actorContext("Dean Office")
	if _, err := svc.CreateBatch(ctx, ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty name = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateBatch(context.Background(), "no actor"); !errors.Is(err, apperr.ErrAuthorization) {
		t.Fatalf("unauthenticated create = %v, want ErrAuthorization", err)
	}
}

func TestAddToBatchUnknownBatch(t *testing.T) {
	db := testutil.DB(t)
	txDB := testutil.Tx(t, db)
	svc := newBatchEnv(t, txDB)
	ctx, _ := actorContext("Dean Office")

	_, err := svc.AddToBatch(ctx, uuid.New(), []uuid.UUID{uuid.New()})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown batch = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestWriteExportCSV(t *testing.T) {
	rows := []ExportRow{
		{
			VerificationID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			DefenseRequestID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Status:           types.StatusReadyForFinance,
			Remarks:          "receipts verified",
		},
	}

	var buf bytes.Buffer
	if err := WriteExportCSV(&buf, rows); err != nil {
		t.Fatalf("WriteExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if lines[0] != "ID,Defense Request,Status,Remarks" {
		t.Fatalf("csv header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "11111111-1111-1111-1111-111111111111,") {
		t.Fatalf("csv row = %q", lines[1])
	}
	if !strings.Contains(lines[1], ",ready_for_finance,") {
		t.Fatalf("csv row missing status: %q", lines[1])
	}
}

func TestWriteExportCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExportCSV(&buf, nil); err != nil {
		t.Fatalf("WriteExportCSV: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "ID,Defense Request,Status,Remarks" {
		t.Fatalf("empty export = %q, want header only", got)
	}
}
