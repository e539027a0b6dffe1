package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/utils"
)

// ErrUserNotFound is returned when a user lookup fails.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when creating or renaming a user would
// violate the unique username constraint.
var ErrUsernameExists = errors.New("username already exists")

// UserRepo persists login accounts.  Role invariants are enforced here:
// a "user" account must reference exactly one recruiter (its identity
// in the pipeline) and an "admin" account must not reference one.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// validateRoleBinding checks the role/recruiter invariant.
func validateRoleBinding(role string, recruiterID *uint64) error {
	switch role {
	case model.RoleAdmin:
		if recruiterID != nil {
			return fmt.Errorf("%w: admin must not reference a recruiter", ErrValidation)
		}
	case model.RoleUser:
		if recruiterID == nil {
			return fmt.Errorf("%w: recruiter is required for non-admin users", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}
	return nil
}

// Create inserts a user with a bcrypt-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, recruiterID *uint64, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if err := validateRoleBinding(role, recruiterID); err != nil {
		return 0, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, recruiter_id) VALUES (?,?,?,?)",
		username, hash, role, recruiterID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUsernameExists
		}
		if strings.Contains(err.Error(), "1452") {
			return 0, ErrRecruiterNotFound
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, recruiter_id, created_at FROM users WHERE username = ? LIMIT 1",
		strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.RecruiterID, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, recruiter_id, created_at FROM users WHERE id = ? LIMIT 1",
		id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.RecruiterID, &u.CreatedAt)
	return u, err
}

// List returns all users ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username, password_hash, role, recruiter_id, created_at FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.RecruiterID, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update rewrites username, role and recruiter binding, and the
// password when newPassword is non-empty.  The role/recruiter invariant
// is re-checked against the merged value.
func (r *UserRepo) Update(ctx context.Context, u *model.User, newPassword string, cost int) error {
	if err := validateRoleBinding(u.Role, u.RecruiterID); err != nil {
		return err
	}
	if newPassword != "" {
		hash, err := utils.HashPassword(newPassword, cost)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET username = ?, password_hash = ?, role = ?, recruiter_id = ? WHERE id = ?",
		u.Username, u.PasswordHash, u.Role, u.RecruiterID, u.ID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrUsernameExists
		}
		if strings.Contains(err.Error(), "1452") {
			return ErrRecruiterNotFound
		}
	}
	return err
}

// Delete removes a user by id.  Refresh tokens cascade at the store level.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
