package model

import "time"

// Candidate is a person being placed.  Candidates are independent of
// clients and recruiters; the only link is through an application.
type Candidate struct {
	ID        uint64    `json:"id"`              // candidates.id
	FullName  string    `json:"full_name"`       // candidates.full_name
	Phone     *string   `json:"phone,omitempty"` // candidates.phone (nullable)
	Email     *string   `json:"email,omitempty"` // candidates.email (nullable)
	Notes     *string   `json:"notes,omitempty"` // candidates.notes (nullable)
	CreatedAt time.Time `json:"created_at"`      // candidates.created_at
}
