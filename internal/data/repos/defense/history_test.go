package defense

import (
	"context"
	"testing"

	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
)

func TestWorkflowHistoryRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewWorkflowHistoryRepo(db, testutil.Logger(t))
	req := testutil.SeedDefenseRequest(t, ctx, tx, "Master of Information Technology", "Final")

	seq, err := repo.NextSeq(dbc, req.ID)
	if err != nil {
		t.Fatalf("NextSeq on empty history: %v", err)
	}
	if seq != 1 {
		t.Fatalf("NextSeq on empty history = %d, want 1", seq)
	}

	for i, status := range []types.VerificationStatus{types.StatusPending, types.StatusReadyForFinance} {
		seq, err := repo.NextSeq(dbc, req.ID)
		if err != nil {
			t.Fatalf("NextSeq: %v", err)
		}
		if want := int64(i + 1); seq != want {
			t.Fatalf("NextSeq = %d, want %d", seq, want)
		}
		entry := &types.WorkflowHistoryEntry{
			DefenseRequestID: req.ID,
			Seq:              seq,
			EventType:        status.EventLabel(),
			Status:           string(status),
		}
		if err := repo.Append(dbc, entry); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := repo.GetByDefenseRequestID(dbc, req.ID)
	if err != nil {
		t.Fatalf("GetByDefenseRequestID: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history length = %d, want 2", len(entries))
	}
	if entries[0].Seq != 1 || entries[1].Seq != 2 {
		t.Fatalf("history not ordered by seq: %d, %d", entries[0].Seq, entries[1].Seq)
	}
	if entries[1].Status != string(types.StatusReadyForFinance) {
		t.Fatalf("entries[1].Status = %q", entries[1].Status)
	}
}
