package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrApplicationNotFound is returned when an application lookup fails.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepo provides persistence for applications, the central
// fact of the pipeline.  Creation together with a new candidate runs in
// a single transaction so a failed application insert never leaves an
// orphaned candidate behind.
type ApplicationRepo struct {
	db *sql.DB
}

// NewApplicationRepo constructs an ApplicationRepo with the given DB handle.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// ValidateStatusDates enforces the status/date invariants: a rejected
// application must carry a rejection date and a hired one a start date.
// Unknown statuses are rejected as well.
func ValidateStatusDates(status string, rejectionDate, startDate *time.Time) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	if status == model.StatusRejected && rejectionDate == nil {
		return fmt.Errorf("%w: status 'rejected' requires rejection_date", ErrValidation)
	}
	if status == model.StatusHired && startDate == nil {
		return fmt.Errorf("%w: status 'hired' requires start_date", ErrValidation)
	}
	return nil
}

// ValidateReplacement enforces replacement consistency: replacement_of_id
// may only be set on an application flagged as a replacement.
func ValidateReplacement(isReplacement bool, replacementOfID *uint64) error {
	if replacementOfID != nil && !isReplacement {
		return fmt.Errorf("%w: replacement_of_id set but is_replacement is false", ErrValidation)
	}
	return nil
}

const applicationColumns = `id, candidate_id, vacancy_id, recruiter_id, date_contacted, status,
	rejection_date, start_date, paid, paid_date, payment_amount,
	is_replacement, replacement_of_id, replacement_note, created_at`

func scanApplication(row interface{ Scan(...any) error }, a *model.Application) error {
	return row.Scan(
		&a.ID, &a.CandidateID, &a.VacancyID, &a.RecruiterID, &a.DateContacted, &a.Status,
		&a.RejectionDate, &a.StartDate, &a.Paid, &a.PaidDate, &a.PaymentAmount,
		&a.IsReplacement, &a.ReplacementOfID, &a.ReplacementNote, &a.CreatedAt,
	)
}

// Create inserts a new application and reads the row back so defaults
// (status, created_at) are populated.  Status/date and replacement
// invariants must be validated by the caller beforehand.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	const q = `INSERT INTO applications
		(candidate_id, vacancy_id, recruiter_id, date_contacted, status,
		 rejection_date, start_date, is_replacement, replacement_of_id, replacement_note)
		VALUES (?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		a.CandidateID, a.VacancyID, a.RecruiterID, a.DateContacted, a.Status,
		a.RejectionDate, a.StartDate, a.IsReplacement, a.ReplacementOfID, a.ReplacementNote)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	sel := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	return scanApplication(r.db.QueryRowContext(ctx, sel, a.ID), a)
}

// CreateWithCandidate creates a candidate and its first application in
// one transaction.  Either both rows are committed or neither is; a
// failed application insert must not leave an orphaned candidate.
func (r *ApplicationRepo) CreateWithCandidate(ctx context.Context, candidates *CandidateRepo, c *model.Candidate, a *model.Application) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := candidates.createTx(ctx, tx, c); err != nil {
		return err
	}
	a.CandidateID = c.ID

	const q = `INSERT INTO applications
		(candidate_id, vacancy_id, recruiter_id, date_contacted, status,
		 rejection_date, start_date, is_replacement, replacement_of_id, replacement_note)
		VALUES (?,?,?,?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, q,
		a.CandidateID, a.VacancyID, a.RecruiterID, a.DateContacted, a.Status,
		a.RejectionDate, a.StartDate, a.IsReplacement, a.ReplacementOfID, a.ReplacementNote)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	sel := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	if err := scanApplication(tx.QueryRowContext(ctx, sel, a.ID), a); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByID returns a single application or ErrApplicationNotFound.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*model.Application, error) {
	var a model.Application
	sel := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	if err := scanApplication(r.db.QueryRowContext(ctx, sel, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Exists reports whether an application with the given id is present.
// Used to validate replacement_of_id references.
func (r *ApplicationRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM applications WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update writes all mutable fields of the application.  The handler
// loads the row, applies partial changes, re-validates the invariants
// and passes the merged value here.  The legacy payment columns are not
// touched; they are owned by the payment recompute path.
func (r *ApplicationRepo) Update(ctx context.Context, a *model.Application) error {
	const q = `UPDATE applications SET
		candidate_id = ?, vacancy_id = ?, recruiter_id = ?, date_contacted = ?, status = ?,
		rejection_date = ?, start_date = ?, is_replacement = ?, replacement_of_id = ?, replacement_note = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.CandidateID, a.VacancyID, a.RecruiterID, a.DateContacted, a.Status,
		a.RejectionDate, a.StartDate, a.IsReplacement, a.ReplacementOfID, a.ReplacementNote,
		a.ID)
	if err != nil {
		return err
	}
	if _, err := res.RowsAffected(); err != nil {
		return err
	}
	return nil
}

// Delete removes an application and its payments in one transaction.
// Returns ErrApplicationNotFound when the id does not exist.
func (r *ApplicationRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Replacement back-references are cleared rather than blocking the
	// delete; the FK is ON DELETE SET NULL but older rows may predate it.
	if _, err := tx.ExecContext(ctx,
		`UPDATE applications SET replacement_of_id = NULL WHERE replacement_of_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM payments WHERE application_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return tx.Commit()
}
