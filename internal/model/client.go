package model

import "time"

// Client represents a hiring company as stored in the `clients` table.
// A client owns zero or more vacancies; it cannot be deleted while any
// vacancy references it.
type Client struct {
	ID        uint64    `json:"id"`         // clients.id
	Name      string    `json:"name"`       // clients.name (unique, non-empty)
	CreatedAt time.Time `json:"created_at"` // clients.created_at
}
