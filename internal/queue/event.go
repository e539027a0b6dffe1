// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published every time a payment row is appended to
// the ledger.  It carries enough denormalized context for downstream
// consumers to log or notify without querying the primary database.
type PaymentRecordedEvent struct {
	PaymentID     uint64  `json:"payment_id"`
	ApplicationID uint64  `json:"application_id"`
	CandidateName string  `json:"candidate_name"`
	VacancyTitle  string  `json:"vacancy_title"`
	ClientName    string  `json:"client_name"`
	RecruiterName string  `json:"recruiter_name"`
	Amount        float64 `json:"amount"`
	PaidDate      string  `json:"paid_date"`
	RecordedBy    uint64  `json:"recorded_by"`
	RecordedAt    string  `json:"recorded_at"`
}
