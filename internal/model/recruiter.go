package model

import "time"

// Recruiter represents a member of the agency as stored in the
// `recruiters` table.  Applications reference a recruiter as their
// assignee and user accounts may be bound to one for row scoping.
type Recruiter struct {
	ID        uint64    `json:"id"`         // recruiters.id
	Name      string    `json:"name"`       // recruiters.name (unique, non-empty)
	CreatedAt time.Time `json:"created_at"` // recruiters.created_at
}
