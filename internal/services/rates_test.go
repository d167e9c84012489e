package services

import (
	"context"
	"errors"
	"testing"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	"github.com/yungbote/gradadmin-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
)

func TestClassifyProgramLevel(t *testing.T) {
	cases := []struct {
		program string
		want    types.ProgramLevel
	}{
		{"Doctor of Philosophy in Education", types.LevelDoctorate},
		{"PhD in Computer Science", types.LevelDoctorate},
		{"Doctorate in Business Administration", types.LevelDoctorate},
		{"Ph.D. Mathematics", types.LevelDoctorate},
		{"Master of Information Technology", types.LevelMasteral},
		{"Master of Arts in Teaching", types.LevelMasteral},
		{"MBA", types.LevelMasteral},
		{"", types.LevelMasteral},
	}
	for _, tc := range cases {
		if got := ClassifyProgramLevel(tc.program); got != tc.want {
			t.Errorf("ClassifyProgramLevel(%q) = %s, want %s", tc.program, got, tc.want)
		}
	}
}

func TestNormalizeDefenseType(t *testing.T) {
	cases := []struct {
		raw  string
		want types.DefenseType
	}{
		{"Proposal", types.DefenseProposal},
		{"proposal defense", types.DefenseProposal},
		{"Final Proposal Defense", types.DefenseProposal},
		{"Pre-Final", types.DefensePreFinal},
		{"prefinal", types.DefensePreFinal},
		{"PRE FINAL", types.DefensePreFinal},
		{"pre_final defense", types.DefensePreFinal},
		{"Final", types.DefenseFinal},
		{"final defense", types.DefenseFinal},
		{"oral exam", types.DefenseUnknown},
		{"", types.DefenseUnknown},
	}
	for _, tc := range cases {
		if got := NormalizeDefenseType(tc.raw); got != tc.want {
			t.Errorf("NormalizeDefenseType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestRateTableResolveFallback(t *testing.T) {
	table := &RateTable{
		Level:       types.LevelMasteral,
		DefenseType: types.DefenseFinal,
		amounts: map[types.RateRole]float64{
			types.RoleAdviser:        1500,
			types.RolePanelChair:     1200,
			types.PanelMemberRole(1): 1000,
		},
	}

	if amount, ok := table.Resolve(types.PanelMemberRole(1)); !ok || amount != 1000 {
		t.Fatalf("Resolve(Panel Member 1) = %v, %v; want 1000, true", amount, ok)
	}
	// Numbered members without their own row take the first member's rate.
	for n := 2; n <= 4; n++ {
		if amount, ok := table.Resolve(types.PanelMemberRole(n)); !ok || amount != 1000 {
			t.Fatalf("Resolve(Panel Member %d) = %v, %v; want fallback 1000, true", n, amount, ok)
		}
	}

	if _, ok := table.Resolve(types.RolePanelMember); ok {
		t.Fatal("bare Panel Member has no row and no fallback; expected ok=false")
	}
}

func TestRateTableResolveBareMemberFallback(t *testing.T) {
	table := &RateTable{
		Level:       types.LevelDoctorate,
		DefenseType: types.DefenseProposal,
		amounts: map[types.RateRole]float64{
			types.RolePanelMember: 1800,
		},
	}
	if amount, ok := table.Resolve(types.PanelMemberRole(3)); !ok || amount != 1800 {
		t.Fatalf("Resolve(Panel Member 3) = %v, %v; want bare-member 1800, true", amount, ok)
	}
}

func TestLoadRateTable(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	log := testutil.Logger(t)
	resolver := NewRateResolver(log, paymentrepo.NewRateRepo(tx, log))

	testutil.SeedMasteralFinalRates(t, ctx, tx)

	table, err := resolver.LoadRateTable(dbc, types.LevelMasteral, types.DefenseFinal)
	if err != nil {
		t.Fatalf("LoadRateTable: %v", err)
	}
	if amount, ok := table.Resolve(types.RoleAdviser); !ok || amount != 1500 {
		t.Fatalf("adviser rate = %v, %v; want 1500, true", amount, ok)
	}
	if amount, ok := table.Resolve(types.PanelMemberRole(2)); !ok || amount != 1000 {
		t.Fatalf("panel member 2 rate = %v, %v; want fallback 1000, true", amount, ok)
	}

	_, err = resolver.LoadRateTable(dbc, types.LevelDoctorate, types.DefenseProposal)
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Fatalf("empty rate table error = %v, want ErrConfiguration", err)
	}
}
