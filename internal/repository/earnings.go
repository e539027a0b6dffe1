package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"
)

// EarningsItem is one report line: a payment joined back to its
// application, candidate, vacancy, client and recruiter.
type EarningsItem struct {
	PaymentID     uint64  `json:"payment_id"`
	ApplicationID uint64  `json:"application_id"`
	PaidDate      string  `json:"paid_date"`
	Amount        float64 `json:"amount"`
	CandidateName string  `json:"candidate_name"`
	ClientName    string  `json:"client_name"`
	VacancyTitle  string  `json:"vacancy_title"`
	RecruiterName string  `json:"recruiter_name"`
}

// EarningsReport aggregates all payments whose paid_date falls inside
// one calendar month, optionally scoped to a recruiter.
type EarningsReport struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Total float64        `json:"total"`
	Items []EarningsItem `json:"items"`
}

// EarningsRepo computes the monthly earnings report.  Read-only.
type EarningsRepo struct {
	db *sql.DB
}

// NewEarningsRepo constructs an EarningsRepo with the given DB handle.
func NewEarningsRepo(db *sql.DB) *EarningsRepo { return &EarningsRepo{db: db} }

// monthRange returns the [start, end) window for a calendar month in
// UTC: the first day of the month up to but excluding the first day of
// the next month, with December rolling over into the next year.
func monthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be 1..12", ErrValidation)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if month == 12 {
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return start, end, nil
}

// Report selects all payments inside the (year, month) window, joined
// back to candidate, client, vacancy and recruiter names.  recruiterID
// restricts the report to one recruiter's placements; for a non-admin
// caller the scope forces it to their own recruiter regardless of the
// requested value.  A month with no payments yields total 0 and an
// empty item list, not an error.  Lines are ordered by paid_date
// ascending with payment id as the tie-break.
func (r *EarningsRepo) Report(ctx context.Context, year, month int, recruiterID uint64, scope Scope) (*EarningsReport, error) {
	start, end, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	report := &EarningsReport{Year: year, Month: month, Items: []EarningsItem{}}
	if scope.Empty() {
		return report, nil
	}

	query := `SELECT
			p.id   AS payment_id,
			a.id   AS application_id,
			p.paid_date,
			p.amount,
			c.full_name AS candidate_name,
			cl.name     AS client_name,
			v.title     AS vacancy_title,
			r.name      AS recruiter_name
		FROM payments p
		JOIN applications a ON a.id  = p.application_id
		JOIN candidates c   ON c.id  = a.candidate_id
		JOIN recruiters r   ON r.id  = a.recruiter_id
		JOIN vacancies v    ON v.id  = a.vacancy_id
		JOIN clients cl     ON cl.id = v.client_id
		WHERE p.paid_date >= ? AND p.paid_date < ?`
	args := []any{start, end}

	if rid := scope.EffectiveRecruiter(recruiterID); rid != 0 {
		query += ` AND r.id = ?`
		args = append(args, rid)
	}
	query += ` ORDER BY p.paid_date ASC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	total := 0.0
	for rows.Next() {
		var it EarningsItem
		var paidDate time.Time
		if err := rows.Scan(
			&it.PaymentID,
			&it.ApplicationID,
			&paidDate,
			&it.Amount,
			&it.CandidateName,
			&it.ClientName,
			&it.VacancyTitle,
			&it.RecruiterName,
		); err != nil {
			return nil, err
		}
		it.PaidDate = paidDate.Format(dateOnly)
		total += it.Amount
		report.Items = append(report.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	report.Total = math.Round(total*100) / 100
	return report, nil
}
