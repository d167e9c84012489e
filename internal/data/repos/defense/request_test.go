package defense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
)

func TestDefenseRequestRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewDefenseRequestRepo(db, testutil.Logger(t))

	date := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	rows := []*types.DefenseRequest{
		{
			ID:              uuid.New(),
			FirstName:       "Maria",
			LastName:        "Reyes",
			ProgramName:     "Master of Information Technology",
			DefenseType:     "Final",
			DefenseDate:     &date,
			ThesisTitle:     "A Study of Things",
			AdviserName:     "Dr. A",
			ChairpersonName: "Dr. B",
		},
		{
			ID:          uuid.New(),
			FirstName:   "Jose",
			LastName:    "Santos",
			ProgramName: "Doctor of Philosophy in Education",
			DefenseType: "Proposal",
		},
	}

	created, err := repo.Create(dbc, rows)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d rows, want 2", len(created))
	}

	got, err := repo.GetByID(dbc, rows[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ProgramName != "Master of Information Technology" {
		t.Fatalf("GetByID program = %q", got.ProgramName)
	}

	both, err := repo.GetByIDs(dbc, []uuid.UUID{rows[0].ID, rows[1].ID})
	if err != nil || len(both) != 2 {
		t.Fatalf("GetByIDs: err=%v len=%d, want 2", err, len(both))
	}

	if _, err := repo.GetByID(dbc, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown id = %v, want gorm.ErrRecordNotFound", err)
	}

	none, err := repo.Create(dbc, nil)
	if err != nil || len(none) != 0 {
		t.Fatalf("empty Create: err=%v len=%d, want no rows", err, len(none))
	}
}
