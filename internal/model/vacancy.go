package model

import "time"

// Vacancy is an open position at a client.  FeeAmount is the placement
// fee the client owes per successful hire; it is non-negative and may
// be zero for replacement placements.
type Vacancy struct {
	ID        uint64    `json:"id"`             // vacancies.id
	ClientID  uint64    `json:"client_id"`      // vacancies.client_id
	Title     string    `json:"title"`          // vacancies.title
	FeeAmount float64   `json:"fee_amount"`     // vacancies.fee_amount
	City      *string   `json:"city,omitempty"` // vacancies.city (nullable)
	CreatedAt time.Time `json:"created_at"`     // vacancies.created_at
}
