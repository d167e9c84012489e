package payment

// VerificationStatus is the closed set of payment verification states.
type VerificationStatus string

const (
	StatusPending         VerificationStatus = "pending"
	StatusReadyForFinance VerificationStatus = "ready_for_finance"
	StatusInProgress      VerificationStatus = "in_progress"
	StatusPaid            VerificationStatus = "paid"
	StatusCompleted       VerificationStatus = "completed"
	StatusInvalid         VerificationStatus = "invalid"
)

// VerificationStatuses lists every defined status, in workflow order.
var VerificationStatuses = []VerificationStatus{
	StatusPending,
	StatusReadyForFinance,
	StatusInProgress,
	StatusPaid,
	StatusCompleted,
	StatusInvalid,
}

func (s VerificationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReadyForFinance, StatusInProgress, StatusPaid, StatusCompleted, StatusInvalid:
		return true
	}
	return false
}

var statusEventLabels = map[VerificationStatus]string{
	StatusPending:         "payment_verification_pending",
	StatusReadyForFinance: "payment_ready_for_finance",
	StatusInProgress:      "payment_in_progress",
	StatusPaid:            "payment_paid",
	StatusCompleted:       "payment_completed",
	StatusInvalid:         "payment_marked_invalid",
}

// EventLabel returns the workflow history event type recorded for a
// transition into s.
func (s VerificationStatus) EventLabel() string {
	if label, ok := statusEventLabels[s]; ok {
		return label
	}
	return "payment_status_changed"
}
