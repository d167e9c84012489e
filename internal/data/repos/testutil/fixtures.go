package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
)

func SeedDefenseRequest(tb testing.TB, ctx context.Context, tx *gorm.DB, program, defenseType string) *types.DefenseRequest {
	tb.Helper()
	date := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	req := &types.DefenseRequest{
		ID:              uuid.New(),
		FirstName:       "Maria",
		MiddleName:      "S",
		LastName:        "Reyes",
		ProgramName:     program,
		DefenseType:     defenseType,
		DefenseDate:     &date,
		ThesisTitle:     "A Study of Things",
		AdviserName:     "Dr. A",
		ChairpersonName: "Dr. B",
		Panelist1Name:   "Dr. C",
	}
	if err := tx.WithContext(ctx).Create(req).Error; err != nil {
		tb.Fatalf("seed defense request: %v", err)
	}
	return req
}

func SeedRate(tb testing.TB, ctx context.Context, tx *gorm.DB, level types.ProgramLevel, defenseType types.DefenseType, role types.RateRole, amount float64) *types.PaymentRate {
	tb.Helper()
	rate := &types.PaymentRate{
		ID:           uuid.New(),
		ProgramLevel: string(level),
		DefenseType:  string(defenseType),
		Role:         string(role),
		Amount:       amount,
	}
	if err := tx.WithContext(ctx).Create(rate).Error; err != nil {
		tb.Fatalf("seed payment rate: %v", err)
	}
	return rate
}

// SeedMasteralFinalRates loads the standard three roles for Masteral / Final.
func SeedMasteralFinalRates(tb testing.TB, ctx context.Context, tx *gorm.DB) {
	tb.Helper()
	SeedRate(tb, ctx, tx, types.LevelMasteral, types.DefenseFinal, types.RoleAdviser, 1500)
	SeedRate(tb, ctx, tx, types.LevelMasteral, types.DefenseFinal, types.RolePanelChair, 1200)
	SeedRate(tb, ctx, tx, types.LevelMasteral, types.DefenseFinal, types.PanelMemberRole(1), 1000)
}

func SeedVerification(tb testing.TB, ctx context.Context, tx *gorm.DB, requestID uuid.UUID, status types.VerificationStatus) *types.PaymentVerification {
	tb.Helper()
	v := &types.PaymentVerification{
		ID:               uuid.New(),
		DefenseRequestID: requestID,
		Status:           status,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed verification: %v", err)
	}
	return v
}
