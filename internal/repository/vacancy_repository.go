package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrVacancyNotFound is returned when a vacancy lookup fails.
var ErrVacancyNotFound = errors.New("vacancy not found")

// VacancyRepo provides CRUD operations for vacancies.  A vacancy
// belongs to exactly one client and cannot be deleted while any
// application references it.
type VacancyRepo struct {
	db *sql.DB
}

// NewVacancyRepo constructs a VacancyRepo with the given DB handle.
func NewVacancyRepo(db *sql.DB) *VacancyRepo { return &VacancyRepo{db: db} }

// Create inserts a new vacancy.  A missing client surfaces as the FK
// error 1452, translated to ErrClientNotFound for the handler layer.
func (r *VacancyRepo) Create(ctx context.Context, v *model.Vacancy) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vacancies (client_id, title, fee_amount, city) VALUES (?,?,?,?)`,
		v.ClientID, v.Title, v.FeeAmount, v.City)
	if err != nil {
		if strings.Contains(err.Error(), "1452") {
			return ErrClientNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM vacancies WHERE id = ?`, v.ID).Scan(&v.CreatedAt)
}

// GetByID returns a single vacancy or ErrVacancyNotFound.
func (r *VacancyRepo) GetByID(ctx context.Context, id uint64) (*model.Vacancy, error) {
	var v model.Vacancy
	err := r.db.QueryRowContext(ctx,
		`SELECT id, client_id, title, fee_amount, city, created_at FROM vacancies WHERE id = ?`, id).
		Scan(&v.ID, &v.ClientID, &v.Title, &v.FeeAmount, &v.City, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns vacancies ordered by title, optionally restricted to a
// single client (clientID = 0 means no filter).
func (r *VacancyRepo) List(ctx context.Context, clientID uint64) ([]model.Vacancy, error) {
	q := `SELECT id, client_id, title, fee_amount, city, created_at FROM vacancies`
	args := []any{}
	if clientID != 0 {
		q += ` WHERE client_id = ?`
		args = append(args, clientID)
	}
	q += ` ORDER BY title`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Vacancy, 0)
	for rows.Next() {
		var v model.Vacancy
		if err := rows.Scan(&v.ID, &v.ClientID, &v.Title, &v.FeeAmount, &v.City, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update writes all mutable fields of the vacancy.  The handler loads
// the row, applies partial changes and passes the merged value here.
func (r *VacancyRepo) Update(ctx context.Context, v *model.Vacancy) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vacancies SET client_id = ?, title = ?, fee_amount = ?, city = ? WHERE id = ?`,
		v.ClientID, v.Title, v.FeeAmount, v.City, v.ID)
	if err != nil {
		if strings.Contains(err.Error(), "1452") {
			return ErrClientNotFound
		}
		return err
	}
	if _, err := res.RowsAffected(); err != nil {
		return err
	}
	return nil
}

// Delete removes a vacancy.  Vacancies referenced by applications are
// protected with ErrConflict.
func (r *VacancyRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE vacancy_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM vacancies WHERE id = ?`, id)
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
		return ErrVacancyNotFound
	}
	return nil
}
