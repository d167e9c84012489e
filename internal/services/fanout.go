package services

import (
	"fmt"
	"strings"

	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	recordsrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/records"
	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

// FanoutSummary reports what one generator run touched, for logging and the
// transition response.
type FanoutSummary struct {
	Honoraria      int      `json:"honoraria"`
	Programs       int      `json:"programs"`
	Students       int      `json:"students"`
	Panelists      int      `json:"panelists"`
	PaymentRecords int      `json:"payment_records"`
	Links          int      `json:"links"`
	SkippedRoles   []string `json:"skipped_roles,omitempty"`
}

// RecordFanoutGenerator materializes the derived record graph for a defense
// request: honorarium rows per committee member, then the
// program/student/panelist/payment summary graph. Every write is an upsert
// on a composite unique key, so repeated or concurrent runs converge on the
// same end state instead of duplicating rows.
type RecordFanoutGenerator interface {
	Generate(dbc dbctx.Context, req *types.DefenseRequest) (*FanoutSummary, error)
}

type recordFanoutGenerator struct {
	log            *logger.Logger
	rates          RateResolver
	honorariumRepo paymentrepo.HonorariumRepo
	programRepo    recordsrepo.ProgramRecordRepo
	studentRepo    recordsrepo.StudentRecordRepo
	panelistRepo   recordsrepo.PanelistRecordRepo
	paymentRepo    recordsrepo.PaymentRecordRepo
	linkRepo       recordsrepo.PanelistStudentLinkRepo
}

func NewRecordFanoutGenerator(
	baseLog *logger.Logger,
	rates RateResolver,
	honorariumRepo paymentrepo.HonorariumRepo,
	programRepo recordsrepo.ProgramRecordRepo,
	studentRepo recordsrepo.StudentRecordRepo,
	panelistRepo recordsrepo.PanelistRecordRepo,
	paymentRepo recordsrepo.PaymentRecordRepo,
	linkRepo recordsrepo.PanelistStudentLinkRepo,
) RecordFanoutGenerator {
	return &recordFanoutGenerator{
		log:            baseLog.With("service", "RecordFanoutGenerator"),
		rates:          rates,
		honorariumRepo: honorariumRepo,
		programRepo:    programRepo,
		studentRepo:    studentRepo,
		panelistRepo:   panelistRepo,
		paymentRepo:    paymentRepo,
		linkRepo:       linkRepo,
	}
}

type committeeSlot struct {
	role types.RateRole
	name string
}

func (g *recordFanoutGenerator) Generate(dbc dbctx.Context, req *types.DefenseRequest) (*FanoutSummary, error) {
	if req == nil {
		return nil, fmt.Errorf("nil defense request")
	}
	summary := &FanoutSummary{}

	level := ClassifyProgramLevel(req.ProgramName)
	defType := NormalizeDefenseType(req.DefenseType)
	studentName := req.StudentName()

	table, err := g.rates.LoadRateTable(dbc, level, defType)
	if err != nil {
		return nil, err
	}

	slots := []committeeSlot{
		{role: types.RoleAdviser, name: req.AdviserName},
		{role: types.RolePanelChair, name: req.ChairpersonName},
	}
	for i, name := range req.PanelistNames() {
		slots = append(slots, committeeSlot{role: types.PanelMemberRole(i + 1), name: name})
	}

	for _, slot := range slots {
		name := strings.TrimSpace(slot.name)
		if name == "" {
			continue
		}
		amount, ok := table.Resolve(slot.role)
		if !ok {
			g.log.Warn("No rate resolvable for role, skipping",
				"defense_request_id", req.ID,
				"role", string(slot.role),
				"program_level", string(level),
				"defense_type", string(defType),
				"configured_roles", table.Roles())
			summary.SkippedRoles = append(summary.SkippedRoles, string(slot.role))
			continue
		}
		row := &types.HonorariumPayment{
			DefenseRequestID: req.ID,
			PanelistName:     name,
			Role:             string(slot.role),
			Amount:           amount,
		}
		if err := g.honorariumRepo.UpsertByRequestPanelistRole(dbc, row); err != nil {
			return nil, fmt.Errorf("upsert honorarium for %s: %w", slot.role, err)
		}
		summary.Honoraria++
	}

	program, err := g.programRepo.FindOrCreate(dbc, &types.ProgramRecord{
		ProgramName:     req.ProgramName,
		DefenseType:     string(defType),
		ProgramCategory: string(level),
	})
	if err != nil {
		return nil, fmt.Errorf("find or create program record: %w", err)
	}
	summary.Programs++

	student, err := g.studentRepo.UpsertByDefenseRequestID(dbc, &types.StudentRecord{
		DefenseRequestID: req.ID,
		ProgramRecordID:  program.ID,
		StudentName:      studentName,
		ThesisTitle:      req.ThesisTitle,
		DefenseDate:      req.DefenseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert student record: %w", err)
	}
	summary.Students++

	honoraria, err := g.honorariumRepo.GetByDefenseRequestID(dbc, req.ID)
	if err != nil {
		return nil, fmt.Errorf("load honoraria: %w", err)
	}
	for _, hon := range honoraria {
		// Advisers are paid but are not tracked as defense panelists in the
		// summary graph.
		if strings.Contains(strings.ToLower(hon.Role), "advis") {
			continue
		}
		panelist, err := g.panelistRepo.FindOrCreate(dbc, &types.PanelistRecord{
			ProgramRecordID: program.ID,
			PanelistName:    hon.PanelistName,
			Role:            hon.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("find or create panelist record for %q: %w", hon.PanelistName, err)
		}
		summary.Panelists++

		if err := g.paymentRepo.UpsertByPanelistStudent(dbc, &types.PaymentRecord{
			PanelistRecordID: panelist.ID,
			StudentRecordID:  student.ID,
			Amount:           hon.Amount,
			Role:             hon.Role,
			DefenseDate:      req.DefenseDate,
		}); err != nil {
			return nil, fmt.Errorf("upsert payment record for %q: %w", hon.PanelistName, err)
		}
		summary.PaymentRecords++

		if err := g.linkRepo.Upsert(dbc, panelist.ID, student.ID); err != nil {
			return nil, fmt.Errorf("upsert panelist-student link for %q: %w", hon.PanelistName, err)
		}
		summary.Links++
	}

	g.log.Info("Record fan-out complete",
		"defense_request_id", req.ID,
		"honoraria", summary.Honoraria,
		"panelists", summary.Panelists,
		"payment_records", summary.PaymentRecords,
		"skipped_roles", summary.SkippedRoles)
	return summary, nil
}
