package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrCandidateNotFound is returned when a candidate lookup fails.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateRepo provides persistence for candidates.  Candidates are
// independent of clients and recruiters; visibility for non-admin
// callers is derived through the applications they are linked to.
type CandidateRepo struct {
	db *sql.DB
}

// NewCandidateRepo constructs a CandidateRepo with the given DB handle.
func NewCandidateRepo(db *sql.DB) *CandidateRepo { return &CandidateRepo{db: db} }

// Create inserts a new candidate and populates ID and created_at.
func (r *CandidateRepo) Create(ctx context.Context, c *model.Candidate) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO candidates (full_name, phone, email, notes) VALUES (?,?,?,?)`,
		c.FullName, c.Phone, c.Email, c.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM candidates WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
}

// createTx mirrors Create inside an existing transaction; used when a
// candidate and its first application are created atomically.
func (r *CandidateRepo) createTx(ctx context.Context, tx *sql.Tx, c *model.Candidate) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO candidates (full_name, phone, email, notes) VALUES (?,?,?,?)`,
		c.FullName, c.Phone, c.Email, c.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return tx.QueryRowContext(ctx,
		`SELECT created_at FROM candidates WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
}

// GetByID returns a single candidate or ErrCandidateNotFound.
func (r *CandidateRepo) GetByID(ctx context.Context, id uint64) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, phone, email, notes, created_at FROM candidates WHERE id = ?`, id).
		Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &c, nil
}

// AccessibleBy reports whether one candidate is visible under the
// scope.  Admins see every candidate; a bound user sees a candidate
// only when one of their own applications links to them, the same rule
// List applies to the directory.
func (r *CandidateRepo) AccessibleBy(ctx context.Context, id uint64, scope Scope) (bool, error) {
	if scope.Admin {
		return true, nil
	}
	if scope.Empty() {
		return false, nil
	}
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE candidate_id = ? AND recruiter_id = ?`,
		id, scope.RecruiterID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns candidates visible under the scope, ordered by full
// name.  A non-admin caller sees only candidates linked to one of their
// own applications.  The optional q filter is a case-insensitive
// substring match over full name, phone and email.
func (r *CandidateRepo) List(ctx context.Context, q string, scope Scope) ([]model.Candidate, error) {
	if scope.Empty() {
		return []model.Candidate{}, nil
	}

	query := `SELECT DISTINCT c.id, c.full_name, c.phone, c.email, c.notes, c.created_at
	          FROM candidates c`
	where := []string{}
	args := []any{}

	if !scope.Admin {
		query += ` JOIN applications a ON a.candidate_id = c.id`
		where = append(where, "a.recruiter_id = ?")
		args = append(args, scope.RecruiterID)
	}
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		where = append(where,
			"(LOWER(c.full_name) LIKE ? OR LOWER(COALESCE(c.phone,'')) LIKE ? OR LOWER(COALESCE(c.email,'')) LIKE ?)")
		args = append(args, like, like, like)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` ORDER BY c.full_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
