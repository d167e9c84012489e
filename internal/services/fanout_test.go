package services

import (
	"context"
	"errors"
	"testing"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	recordsrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/records"
	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"gorm.io/gorm"
)

func newTestFanout(t *testing.T, tx *gorm.DB, log *logger.Logger) RecordFanoutGenerator {
	t.Helper()
	return NewRecordFanoutGenerator(
		log,
		NewRateResolver(log, paymentrepo.NewRateRepo(tx, log)),
		paymentrepo.NewHonorariumRepo(tx, log),
		recordsrepo.NewProgramRecordRepo(tx, log),
		recordsrepo.NewStudentRecordRepo(tx, log),
		recordsrepo.NewPanelistRecordRepo(tx, log),
		recordsrepo.NewPaymentRecordRepo(tx, log),
		recordsrepo.NewPanelistStudentLinkRepo(tx, log),
	)
}

func TestFanoutGenerate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	testutil.SeedMasteralFinalRates(t, ctx, tx)
	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Information Technology", "Final Defense")

	gen := newTestFanout(t, tx, log)
	summary, err := gen.Generate(dbc, req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Committee is adviser + chair + one panelist; the adviser is paid but
	// stays out of the panelist graph.
	if summary.Honoraria != 3 {
		t.Errorf("Honoraria = %d, want 3", summary.Honoraria)
	}
	if summary.Programs != 1 || summary.Students != 1 {
		t.Errorf("Programs/Students = %d/%d, want 1/1", summary.Programs, summary.Students)
	}
	if summary.Panelists != 2 || summary.PaymentRecords != 2 || summary.Links != 2 {
		t.Errorf("Panelists/PaymentRecords/Links = %d/%d/%d, want 2/2/2",
			summary.Panelists, summary.PaymentRecords, summary.Links)
	}
	if len(summary.SkippedRoles) != 0 {
		t.Errorf("SkippedRoles = %v, want none", summary.SkippedRoles)
	}

	honoraria, err := paymentrepo.NewHonorariumRepo(tx, log).GetByDefenseRequestID(dbc, req.ID)
	if err != nil {
		t.Fatalf("load honoraria: %v", err)
	}
	amounts := map[string]float64{}
	for _, hon := range honoraria {
		amounts[hon.Role] = hon.Amount
	}
	if amounts[string(types.RoleAdviser)] != 1500 ||
		amounts[string(types.RolePanelChair)] != 1200 ||
		amounts[string(types.PanelMemberRole(1))] != 1000 {
		t.Errorf("honorarium amounts = %v, want adviser 1500 / chair 1200 / member 1000", amounts)
	}
}

func TestFanoutGenerateIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	testutil.SeedMasteralFinalRates(t, ctx, tx)
	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Arts", "Final")

	gen := newTestFanout(t, tx, log)
	if _, err := gen.Generate(dbc, req); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := gen.Generate(dbc, req); err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	var honoraria, programs, students, panelists, payments, links int64
	for _, count := range []struct {
		model interface{}
		out   *int64
	}{
		{&types.HonorariumPayment{}, &honoraria},
		{&types.ProgramRecord{}, &programs},
		{&types.StudentRecord{}, &students},
		{&types.PanelistRecord{}, &panelists},
		{&types.PaymentRecord{}, &payments},
		{&types.PanelistStudentLink{}, &links},
	} {
		if err := tx.WithContext(ctx).Model(count.model).Count(count.out).Error; err != nil {
			t.Fatalf("count %T: %v", count.model, err)
		}
	}
	if honoraria != 3 || programs != 1 || students != 1 || panelists != 2 || payments != 2 || links != 2 {
		t.Fatalf("row counts after re-run = honoraria %d programs %d students %d panelists %d payments %d links %d; want 3/1/1/2/2/2",
			honoraria, programs, students, panelists, payments, links)
	}
}

func TestFanoutGenerateSkipsUnresolvableRoles(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	// Only the adviser has a configured rate; chair and member are soft
	// skips, not failures.
	testutil.SeedRate(t, ctx, tx, types.LevelMasteral, types.DefenseFinal, types.RoleAdviser, 1500)
	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Arts", "Final")

	gen := newTestFanout(t, tx, log)
	summary, err := gen.Generate(dbc, req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if summary.Honoraria != 1 {
		t.Errorf("Honoraria = %d, want 1 (adviser only)", summary.Honoraria)
	}
	if len(summary.SkippedRoles) != 2 {
		t.Errorf("SkippedRoles = %v, want chair and panel member", summary.SkippedRoles)
	}
	if summary.Panelists != 0 {
		t.Errorf("Panelists = %d, want 0 (adviser excluded, rest skipped)", summary.Panelists)
	}
}

func TestFanoutGenerateFailsWithoutRates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	req := testutil.SeedDefenseRequest(t, ctx, tx, "Doctor of Philosophy in Education", "Proposal")

	gen := newTestFanout(t, tx, log)
	_, err := gen.Generate(dbc, req)
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Fatalf("Generate with empty rate table = %v, want ErrConfiguration", err)
	}
}
