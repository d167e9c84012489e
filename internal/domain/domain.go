package domain

import (
	"github.com/yungbote/gradadmin-backend/internal/domain/defense"
	"github.com/yungbote/gradadmin-backend/internal/domain/payment"
	"github.com/yungbote/gradadmin-backend/internal/domain/records"
)

type (
	DefenseRequest       = defense.DefenseRequest
	WorkflowHistoryEntry = defense.WorkflowHistoryEntry

	PaymentVerification = payment.PaymentVerification
	PaymentBatch        = payment.PaymentBatch
	PaymentRate         = payment.PaymentRate
	HonorariumPayment   = payment.HonorariumPayment
	VerificationStatus  = payment.VerificationStatus
	ProgramLevel        = payment.ProgramLevel
	DefenseType         = payment.DefenseType
	RateRole            = payment.RateRole

	ProgramRecord       = records.ProgramRecord
	StudentRecord       = records.StudentRecord
	PanelistRecord      = records.PanelistRecord
	PaymentRecord       = records.PaymentRecord
	PanelistStudentLink = records.PanelistStudentLink
)

const (
	StatusPending         = payment.StatusPending
	StatusReadyForFinance = payment.StatusReadyForFinance
	StatusInProgress      = payment.StatusInProgress
	StatusPaid            = payment.StatusPaid
	StatusCompleted       = payment.StatusCompleted
	StatusInvalid         = payment.StatusInvalid

	LevelMasteral  = payment.LevelMasteral
	LevelDoctorate = payment.LevelDoctorate

	DefenseProposal = payment.DefenseProposal
	DefensePreFinal = payment.DefensePreFinal
	DefenseFinal    = payment.DefenseFinal
	DefenseUnknown  = payment.DefenseUnknown

	RoleAdviser     = payment.RoleAdviser
	RolePanelChair  = payment.RolePanelChair
	RolePanelMember = payment.RolePanelMember
)

// VerificationStatuses lists every defined status, in workflow order.
var VerificationStatuses = payment.VerificationStatuses

// PanelMemberRole returns the numbered panel member role for slot n.
func PanelMemberRole(n int) RateRole {
	return payment.PanelMemberRole(n)
}
