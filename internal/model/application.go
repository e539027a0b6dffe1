package model

import "time"

// Application statuses.  An application moves from new through
// in_process to either rejected or hired.
const (
	StatusNew       = "new"
	StatusInProcess = "in_process"
	StatusRejected  = "rejected"
	StatusHired     = "hired"
)

// ValidStatus reports whether s is one of the four pipeline statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProcess, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application is the central fact of the system: one candidate's pursuit
// of one vacancy through one recruiter.
//
// The Paid, PaidDate and PaymentAmount columns are legacy scalars kept
// only so older consumers of the applications table keep working.
// Ledger operations never write them; the pipeline and earnings queries
// derive the current paid state from the payments ledger directly.
type Application struct {
	ID              uint64     `json:"id"`                          // applications.id
	CandidateID     uint64     `json:"candidate_id"`                // applications.candidate_id
	VacancyID       uint64     `json:"vacancy_id"`                  // applications.vacancy_id
	RecruiterID     uint64     `json:"recruiter_id"`                // applications.recruiter_id
	DateContacted   *time.Time `json:"date_contacted,omitempty"`    // applications.date_contacted (DATE)
	Status          string     `json:"status"`                      // applications.status
	RejectionDate   *time.Time `json:"rejection_date,omitempty"`    // required iff status = rejected
	StartDate       *time.Time `json:"start_date,omitempty"`        // required iff status = hired
	Paid            bool       `json:"paid"`                        // legacy scalar, ledger supersedes
	PaidDate        *time.Time `json:"paid_date,omitempty"`         // legacy scalar, ledger supersedes
	PaymentAmount   float64    `json:"payment_amount"`              // legacy scalar, ledger supersedes
	IsReplacement   bool       `json:"is_replacement"`              // fee-free re-fill of a failed hire
	ReplacementOfID *uint64    `json:"replacement_of_id,omitempty"` // prior application being replaced
	ReplacementNote *string    `json:"replacement_note,omitempty"`  // free-text context
	CreatedAt       time.Time  `json:"created_at"`                  // applications.created_at
}
