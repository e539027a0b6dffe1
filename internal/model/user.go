package model

import "time"

// User roles.  A "user" account is bound to exactly one recruiter and
// sees only that recruiter's rows; an "admin" account carries no
// recruiter binding and sees everything.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a login account as stored in the `users` table.
type User struct {
	ID           uint64    `json:"id"`                     // users.id
	Username     string    `json:"username"`               // users.username (unique)
	PasswordHash string    `json:"-"`                      // users.password_hash (bcrypt)
	Role         string    `json:"role"`                   // users.role (admin|user)
	RecruiterID  *uint64   `json:"recruiter_id,omitempty"` // users.recruiter_id (nullable)
	CreatedAt    time.Time `json:"created_at"`             // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA‑256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
