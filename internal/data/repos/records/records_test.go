package records

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
)

func TestProgramRecordFindOrCreateConverges(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewProgramRecordRepo(db, testutil.Logger(t))

	first, err := repo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     "Master of Information Technology",
		DefenseType:     "Final",
		ProgramCategory: string(types.LevelMasteral),
	})
	if err != nil {
		t.Fatalf("first FindOrCreate: %v", err)
	}
	second, err := repo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     "Master of Information Technology",
		DefenseType:     "Final",
		ProgramCategory: string(types.LevelMasteral),
	})
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("FindOrCreate created a duplicate: %s != %s", second.ID, first.ID)
	}

	other, err := repo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     "Master of Information Technology",
		DefenseType:     "Proposal",
		ProgramCategory: string(types.LevelMasteral),
	})
	if err != nil {
		t.Fatalf("FindOrCreate distinct defense type: %v", err)
	}
	if other.ID == first.ID {
		t.Fatal("distinct defense type should produce a separate program record")
	}
}

func TestStudentRecordUpsertByDefenseRequestID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	programRepo := NewProgramRecordRepo(db, testutil.Logger(t))
	studentRepo := NewStudentRecordRepo(db, testutil.Logger(t))
	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Arts", "Final")

	program, err := programRepo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     req.ProgramName,
		DefenseType:     "Final",
		ProgramCategory: string(types.LevelMasteral),
	})
	if err != nil {
		t.Fatalf("FindOrCreate program: %v", err)
	}

	when := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	first, err := studentRepo.UpsertByDefenseRequestID(dbc, &types.StudentRecord{
		DefenseRequestID: req.ID,
		ProgramRecordID:  program.ID,
		StudentName:      "Maria S Reyes",
		ThesisTitle:      req.ThesisTitle,
		DefenseDate:      &when,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := studentRepo.UpsertByDefenseRequestID(dbc, &types.StudentRecord{
		DefenseRequestID: req.ID,
		ProgramRecordID:  program.ID,
		StudentName:      "Maria Santos Reyes",
		ThesisTitle:      req.ThesisTitle,
		DefenseDate:      &when,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a duplicate student record: %s != %s", second.ID, first.ID)
	}
	if second.StudentName != "Maria Santos Reyes" {
		t.Fatalf("student name not refreshed: %q", second.StudentName)
	}
}

func TestPanelistRecordAndLinks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	log := testutil.Logger(t)
	programRepo := NewProgramRecordRepo(db, log)
	studentRepo := NewStudentRecordRepo(db, log)
	panelistRepo := NewPanelistRecordRepo(db, log)
	paymentRepo := NewPaymentRecordRepo(db, log)
	linkRepo := NewPanelistStudentLinkRepo(db, log)

	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Arts", "Final")
	program, err := programRepo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     req.ProgramName,
		DefenseType:     "Final",
		ProgramCategory: string(types.LevelMasteral),
	})
	if err != nil {
		t.Fatalf("FindOrCreate program: %v", err)
	}
	student, err := studentRepo.UpsertByDefenseRequestID(dbc, &types.StudentRecord{
		DefenseRequestID: req.ID,
		ProgramRecordID:  program.ID,
		StudentName:      "Maria S Reyes",
	})
	if err != nil {
		t.Fatalf("upsert student: %v", err)
	}

	panelist, err := panelistRepo.FindOrCreate(dbc, &types.PanelistRecord{
		ProgramRecordID: program.ID,
		PanelistName:    "Dr. B",
		Role:            string(types.RolePanelChair),
	})
	if err != nil {
		t.Fatalf("FindOrCreate panelist: %v", err)
	}
	samePanelist, err := panelistRepo.FindOrCreate(dbc, &types.PanelistRecord{
		ProgramRecordID: program.ID,
		PanelistName:    "Dr. B",
		Role:            string(types.RolePanelChair),
	})
	if err != nil {
		t.Fatalf("second FindOrCreate panelist: %v", err)
	}
	if samePanelist.ID != panelist.ID {
		t.Fatal("panelist FindOrCreate should converge on the existing row")
	}

	roster, err := panelistRepo.GetByProgramRecordID(dbc, program.ID)
	if err != nil {
		t.Fatalf("GetByProgramRecordID: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != panelist.ID {
		t.Fatalf("program roster = %d rows, want the single panelist", len(roster))
	}

	for i := 0; i < 2; i++ {
		if err := paymentRepo.UpsertByPanelistStudent(dbc, &types.PaymentRecord{
			PanelistRecordID: panelist.ID,
			StudentRecordID:  student.ID,
			Amount:           1200,
			Role:             string(types.RolePanelChair),
		}); err != nil {
			t.Fatalf("payment upsert %d: %v", i, err)
		}
		if err := linkRepo.Upsert(dbc, panelist.ID, student.ID); err != nil {
			t.Fatalf("link upsert %d: %v", i, err)
		}
	}

	payments, err := paymentRepo.GetByStudentRecordID(dbc, student.ID)
	if err != nil || len(payments) != 1 {
		t.Fatalf("payments: err=%v len=%d, want exactly 1", err, len(payments))
	}
	links, err := linkRepo.GetByStudentRecordID(dbc, student.ID)
	if err != nil || len(links) != 1 {
		t.Fatalf("links: err=%v len=%d, want exactly 1", err, len(links))
	}
}
