package services

import (
	"fmt"
	"strings"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

// doctorateKeywords drives program level classification. Case-insensitive
// substring match; any program matching none of these bills at the Masteral
// tier, bachelor-level programs included, because the rate table only has
// two tiers.
var doctorateKeywords = []string{
	"doctor",
	"doctorate",
	"doctoral",
	"phd",
	"ph.d",
	"dba",
	"edd",
	"dsc",
	"dpm",
	"dpa",
}

// ClassifyProgramLevel maps a raw program name to its rate-table tier.
func ClassifyProgramLevel(programName string) types.ProgramLevel {
	name := strings.ToLower(programName)
	for _, kw := range doctorateKeywords {
		if strings.Contains(name, kw) {
			return types.LevelDoctorate
		}
	}
	return types.LevelMasteral
}

// NormalizeDefenseType canonicalizes a raw defense type string. Whitespace,
// hyphens, underscores and case are ignored; matches are checked in priority
// order so "Final Proposal Defense" still reads as a proposal.
func NormalizeDefenseType(raw string) types.DefenseType {
	s := strings.ToLower(raw)
	s = strings.NewReplacer(" ", "", "\t", "", "-", "", "_", "").Replace(s)
	switch {
	case strings.Contains(s, "proposal"):
		return types.DefenseProposal
	case strings.Contains(s, "prefinal"):
		return types.DefensePreFinal
	case strings.Contains(s, "pre") && strings.Contains(s, "final"):
		return types.DefensePreFinal
	case strings.Contains(s, "final"):
		return types.DefenseFinal
	default:
		return types.DefenseUnknown
	}
}

// roleFallbacks is the explicit resolution order per committee role. A
// numbered panel member falls back to the first member's rate, then to a
// bare "Panel Member" rate.
var roleFallbacks = map[types.RateRole][]types.RateRole{
	types.RoleAdviser:     {types.RoleAdviser},
	types.RolePanelChair:  {types.RolePanelChair},
	types.RolePanelMember: {types.RolePanelMember},
	types.PanelMemberRole(1): {
		types.PanelMemberRole(1),
		types.RolePanelMember,
	},
	types.PanelMemberRole(2): {
		types.PanelMemberRole(2),
		types.PanelMemberRole(1),
		types.RolePanelMember,
	},
	types.PanelMemberRole(3): {
		types.PanelMemberRole(3),
		types.PanelMemberRole(1),
		types.RolePanelMember,
	},
	types.PanelMemberRole(4): {
		types.PanelMemberRole(4),
		types.PanelMemberRole(1),
		types.RolePanelMember,
	},
}

// RateTable holds every rate row for one (program level, defense type) pair.
type RateTable struct {
	Level       types.ProgramLevel
	DefenseType types.DefenseType
	amounts     map[types.RateRole]float64
}

// Resolve walks the fallback chain for role and returns the first configured
// amount. ok is false when no link of the chain has a rate; that is a soft
// miss the caller may skip.
func (t *RateTable) Resolve(role types.RateRole) (float64, bool) {
	chain, known := roleFallbacks[role]
	if !known {
		chain = []types.RateRole{role}
	}
	for _, r := range chain {
		if amount, ok := t.amounts[r]; ok {
			return amount, true
		}
	}
	return 0, false
}

// Roles returns the roles with a directly configured rate.
func (t *RateTable) Roles() []types.RateRole {
	out := make([]types.RateRole, 0, len(t.amounts))
	for r := range t.amounts {
		out = append(out, r)
	}
	return out
}

// RateResolver loads and answers honorarium rate lookups.
type RateResolver interface {
	LoadRateTable(dbc dbctx.Context, level types.ProgramLevel, defenseType types.DefenseType) (*RateTable, error)
}

type rateResolver struct {
	log      *logger.Logger
	rateRepo paymentrepo.RateRepo
}

func NewRateResolver(baseLog *logger.Logger, rateRepo paymentrepo.RateRepo) RateResolver {
	return &rateResolver{
		log:      baseLog.With("service", "RateResolver"),
		rateRepo: rateRepo,
	}
}

// LoadRateTable fails with a configuration error when the pair has no rows
// at all: honoraria generated against an empty table could not be trusted.
func (s *rateResolver) LoadRateTable(dbc dbctx.Context, level types.ProgramLevel, defenseType types.DefenseType) (*RateTable, error) {
	rows, err := s.rateRepo.GetByLevelAndType(dbc, level, defenseType)
	if err != nil {
		return nil, fmt.Errorf("load payment rates: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperr.ConfigurationError(
			fmt.Sprintf("no payment rates configured for %s / %s", level, defenseType))
	}
	amounts := make(map[types.RateRole]float64, len(rows))
	for _, row := range rows {
		amounts[types.RateRole(row.Role)] = row.Amount
	}
	return &RateTable{Level: level, DefenseType: defenseType, amounts: amounts}, nil
}
