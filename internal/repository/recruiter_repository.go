package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrRecruiterNotFound is returned when a recruiter lookup fails.
var ErrRecruiterNotFound = errors.New("recruiter not found")

// RecruiterRepo provides CRUD operations for recruiters.  A recruiter
// referenced by an application or a user account cannot be deleted.
type RecruiterRepo struct {
	db *sql.DB
}

// NewRecruiterRepo constructs a RecruiterRepo with the given DB handle.
func NewRecruiterRepo(db *sql.DB) *RecruiterRepo { return &RecruiterRepo{db: db} }

// Create inserts a new recruiter.  A duplicate name yields ErrNameExists.
func (r *RecruiterRepo) Create(ctx context.Context, rec *model.Recruiter) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO recruiters (name) VALUES (?)`, rec.Name)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrNameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM recruiters WHERE id = ?`, rec.ID).Scan(&rec.CreatedAt)
}

// GetByID returns a single recruiter or ErrRecruiterNotFound.
func (r *RecruiterRepo) GetByID(ctx context.Context, id uint64) (*model.Recruiter, error) {
	var rec model.Recruiter
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM recruiters WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecruiterNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns recruiters visible under the scope, ordered by name.  An
// admin sees all recruiters; a regular user sees only their own entry.
func (r *RecruiterRepo) List(ctx context.Context, scope Scope) ([]model.Recruiter, error) {
	if scope.Empty() {
		return []model.Recruiter{}, nil
	}
	if !scope.Admin {
		rec, err := r.GetByID(ctx, scope.RecruiterID)
		if err != nil {
			if errors.Is(err, ErrRecruiterNotFound) {
				return []model.Recruiter{}, nil
			}
			return nil, err
		}
		return []model.Recruiter{*rec}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM recruiters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Recruiter, 0)
	for rows.Next() {
		var rec model.Recruiter
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateName renames a recruiter with the same semantics as
// ClientRepo.UpdateName.
func (r *RecruiterRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recruiters SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrNameExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a recruiter.  Recruiters referenced by applications or
// user accounts are protected with ErrConflict; no cascading delete.
func (r *RecruiterRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	err := r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM applications WHERE recruiter_id = ?) +
		        (SELECT COUNT(*) FROM users WHERE recruiter_id = ?)`, id, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM recruiters WHERE id = ?`, id)
	if err != nil {
		if strings.Contains(err.Error(), "1451") {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecruiterNotFound
	}
	return nil
}
