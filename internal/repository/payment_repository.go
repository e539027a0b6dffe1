package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/talentflow/recruiting-crm/internal/model"
)

// ErrPaymentNotFound is returned when a payment lookup fails.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo is the ledger of discrete fee payments per application.
// The ledger is the sole source of truth for an application's paid
// state; ledger operations never write the deprecated scalar payment
// columns on the applications table.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the given DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// PaymentSummary is the ledger aggregate for one application.
type PaymentSummary struct {
	Paid         bool       `json:"paid"`                     // at least one payment exists
	Total        float64    `json:"total"`                    // sum of amounts, rounded to 2 decimals
	LastPaidDate *time.Time `json:"last_paid_date,omitempty"` // max paid_date, nil when no payments
}

// Summarize derives the paid state from ledger rows: paid is true iff
// at least one payment exists, total is the sum of amounts rounded to
// 2 decimals, last_paid_date is the latest paid_date or nil.  The
// pipeline query's grouped payments subquery mirrors this derivation;
// the two must agree.
func Summarize(items []model.Payment) PaymentSummary {
	var s PaymentSummary
	if len(items) == 0 {
		return s
	}
	s.Paid = true
	var total float64
	last := items[0].PaidDate
	for _, p := range items {
		total += p.Amount
		if p.PaidDate.After(last) {
			last = p.PaidDate
		}
	}
	s.Total = math.Round(total*100) / 100
	s.LastPaidDate = &last
	return s
}

// Add validates and appends a payment.  Amount must be positive and
// paid_date must be set; violations return ErrValidation.  Only the
// payments table is touched.
func (r *PaymentRepo) Add(ctx context.Context, p *model.Payment) error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if p.PaidDate.IsZero() {
		return fmt.Errorf("%w: paid_date is required", ErrValidation)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (application_id, paid_date, amount, note) VALUES (?,?,?,?)`,
		p.ApplicationID, p.PaidDate, p.Amount, p.Note)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM payments WHERE id = ?`, p.ID).Scan(&p.CreatedAt)
}

// GetByID returns a single payment or ErrPaymentNotFound.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, application_id, paid_date, amount, note, created_at FROM payments WHERE id = ?`, id).
		Scan(&p.ID, &p.ApplicationID, &p.PaidDate, &p.Amount, &p.Note, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByApplication returns all payments for one application ordered by
// paid_date ascending with id ascending as the tie-break, so the output
// is deterministic.
func (r *PaymentRepo) ListByApplication(ctx context.Context, applicationID uint64) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, application_id, paid_date, amount, note, created_at
		 FROM payments WHERE application_id = ?
		 ORDER BY paid_date ASC, id ASC`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Payment, 0)
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.ApplicationID, &p.PaidDate, &p.Amount, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a payment by id.  Returns ErrPaymentNotFound when
// absent.  The derived paid state of the owning application changes
// implicitly because it is always read from the ledger.
func (r *PaymentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
