package model

import "time"

// Payment is one discrete (possibly partial) fee payment against an
// application.  The set of payments for an application is the
// authoritative ledger; derived paid/total/last-paid values supersede
// the application's legacy scalar columns.
type Payment struct {
	ID            uint64    `json:"id"`             // payments.id
	ApplicationID uint64    `json:"application_id"` // payments.application_id
	PaidDate      time.Time `json:"paid_date"`      // payments.paid_date (DATE)
	Amount        float64   `json:"amount"`         // payments.amount (> 0)
	Note          *string   `json:"note,omitempty"` // payments.note (nullable)
	CreatedAt     time.Time `json:"created_at"`     // payments.created_at
}
