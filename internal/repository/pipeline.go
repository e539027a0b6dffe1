package repository

import (
	"context"
	"database/sql"
	"strings"
)

// dateOnly is the wire format for calendar dates (no time component).
const dateOnly = "2006-01-02"

// PipelineQuery defines the optional filters for the pipeline view.
// Zero values mean "no filter".  Limit is clamped to [1, 2000] with a
// default of 500, matching the UI's paging-free full-set contract.
type PipelineQuery struct {
	ClientID    uint64
	RecruiterID uint64
	Status      string
	Search      string
	Limit       int
}

// PipelineRow is one denormalized application row: the application
// joined with its candidate, recruiter, vacancy and client, plus the
// ledger-derived payment aggregate.  The aggregate supersedes the
// application's legacy scalar payment columns.
type PipelineRow struct {
	ID              uint64  `json:"id"`
	DateContacted   *string `json:"date_contacted"`
	Status          string  `json:"status"`
	RejectionDate   *string `json:"rejection_date"`
	StartDate       *string `json:"start_date"`
	Paid            bool    `json:"paid"`
	PaidDate        *string `json:"paid_date"`
	PaymentAmount   float64 `json:"payment_amount"`
	IsReplacement   bool    `json:"is_replacement"`
	ReplacementOfID *uint64 `json:"replacement_of_id"`
	ReplacementNote *string `json:"replacement_note"`

	CandidateID   uint64 `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`

	RecruiterID   uint64 `json:"recruiter_id"`
	RecruiterName string `json:"recruiter_name"`

	VacancyID    uint64  `json:"vacancy_id"`
	VacancyTitle string  `json:"vacancy_title"`
	VacancyFee   float64 `json:"vacancy_fee"`

	ClientID   uint64 `json:"client_id"`
	ClientName string `json:"client_name"`
}

// PipelineRepo produces the filtered, role-scoped pipeline listing.
// All queries are read-only.
type PipelineRepo struct {
	db *sql.DB
}

// NewPipelineRepo constructs a PipelineRepo with the given DB handle.
func NewPipelineRepo(db *sql.DB) *PipelineRepo { return &PipelineRepo{db: db} }

// buildPipelineWhere translates the filter set and scope into a WHERE
// condition and its arguments.  Scoping is applied before any caller
// filter: a non-admin's recruiter filter is forced to their own
// recruiter, so the supplied value can never widen visibility.  All
// predicates combine with AND; search is a case-insensitive substring
// OR-chain over candidate, vacancy, client and recruiter names.
func buildPipelineWhere(q PipelineQuery, scope Scope) (string, []any) {
	where := []string{}
	args := []any{}

	if rid := scope.EffectiveRecruiter(q.RecruiterID); rid != 0 {
		where = append(where, "r.id = ?")
		args = append(args, rid)
	}
	if q.ClientID != 0 {
		where = append(where, "cl.id = ?")
		args = append(args, q.ClientID)
	}
	if q.Status != "" {
		where = append(where, "a.status = ?")
		args = append(args, q.Status)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		where = append(where,
			"(LOWER(c.full_name) LIKE ? OR LOWER(v.title) LIKE ? OR LOWER(cl.name) LIKE ? OR LOWER(r.name) LIKE ?)")
		args = append(args, like, like, like, like)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return cond, args
}

// List runs the pipeline query: applications joined with candidate,
// recruiter, vacancy and client, LEFT JOINed with the grouped payments
// ledger for the derived paid flag, paid total and last paid date.
// Rows are ordered newest first (created_at DESC, id DESC tie-break).
func (r *PipelineRepo) List(ctx context.Context, q PipelineQuery, scope Scope) ([]PipelineRow, error) {
	if scope.Empty() {
		return []PipelineRow{}, nil
	}

	cond, args := buildPipelineWhere(q, scope)

	limit := q.Limit
	if limit <= 0 {
		limit = 500
	}
	if limit > 2000 {
		limit = 2000
	}

	query := `SELECT
			a.id,
			a.date_contacted,
			a.status,
			a.rejection_date,
			a.start_date,
			COALESCE(p.cnt, 0) > 0       AS paid,
			p.last_paid                  AS paid_date,
			COALESCE(p.total, 0)         AS payment_amount,
			a.is_replacement,
			a.replacement_of_id,
			a.replacement_note,
			c.id   AS candidate_id,
			c.full_name AS candidate_name,
			r.id   AS recruiter_id,
			r.name AS recruiter_name,
			v.id   AS vacancy_id,
			v.title AS vacancy_title,
			v.fee_amount AS vacancy_fee,
			cl.id  AS client_id,
			cl.name AS client_name
		FROM applications a
		JOIN candidates c  ON c.id  = a.candidate_id
		JOIN recruiters r  ON r.id  = a.recruiter_id
		JOIN vacancies v   ON v.id  = a.vacancy_id
		JOIN clients cl    ON cl.id = v.client_id
		LEFT JOIN (
			SELECT application_id, COUNT(*) AS cnt, SUM(amount) AS total, MAX(paid_date) AS last_paid
			FROM payments GROUP BY application_id
		) p ON p.application_id = a.id
		WHERE ` + cond + `
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?`

	argsData := append(append([]any{}, args...), limit)

	rows, err := r.db.QueryContext(ctx, query, argsData...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PipelineRow, 0, limit)
	for rows.Next() {
		var d PipelineRow
		var dateContacted, rejectionDate, startDate, paidDate sql.NullTime
		if err := rows.Scan(
			&d.ID,
			&dateContacted,
			&d.Status,
			&rejectionDate,
			&startDate,
			&d.Paid,
			&paidDate,
			&d.PaymentAmount,
			&d.IsReplacement,
			&d.ReplacementOfID,
			&d.ReplacementNote,
			&d.CandidateID,
			&d.CandidateName,
			&d.RecruiterID,
			&d.RecruiterName,
			&d.VacancyID,
			&d.VacancyTitle,
			&d.VacancyFee,
			&d.ClientID,
			&d.ClientName,
		); err != nil {
			return nil, err
		}
		d.DateContacted = dateString(dateContacted)
		d.RejectionDate = dateString(rejectionDate)
		d.StartDate = dateString(startDate)
		d.PaidDate = dateString(paidDate)
		out = append(out, d)
	}
	return out, rows.Err()
}

// dateString formats a nullable DATE column as YYYY-MM-DD, or nil.
func dateString(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateOnly)
	return &s
}
