package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// ApplicationHandler manages the pipeline's central records.  It bundles
// the repositories needed to validate references, create an inline
// candidate in the same transaction, and record an optional initial
// payment.
type ApplicationHandler struct {
	Applications *repository.ApplicationRepo
	Candidates   *repository.CandidateRepo
	Vacancies    *repository.VacancyRepo
	Clients      *repository.ClientRepo
	Recruiters   *repository.RecruiterRepo
	Payments     *repository.PaymentRepo
}

func NewApplicationHandler(apps *repository.ApplicationRepo, cands *repository.CandidateRepo, vacs *repository.VacancyRepo, clients *repository.ClientRepo, recs *repository.RecruiterRepo, pays *repository.PaymentRepo) *ApplicationHandler {
	if apps == nil || cands == nil || vacs == nil || clients == nil || recs == nil || pays == nil {
		panic("nil repository passed to NewApplicationHandler")
	}
	return &ApplicationHandler{
		Applications: apps,
		Candidates:   cands,
		Vacancies:    vacs,
		Clients:      clients,
		Recruiters:   recs,
		Payments:     pays,
	}
}

// initialPaymentReq is an optional ledger entry recorded together with a
// new application.  A zero or omitted amount falls back to the
// vacancy's fee.
type initialPaymentReq struct {
	PaidDate string  `json:"paid_date"`
	Amount   float64 `json:"amount"`
	Note     *string `json:"note"`
}

type applicationReq struct {
	CandidateID     uint64             `json:"candidate_id"`
	Candidate       *candidateReq      `json:"candidate"` // inline creation alternative
	VacancyID       uint64             `json:"vacancy_id"`
	RecruiterID     uint64             `json:"recruiter_id"`
	DateContacted   *string            `json:"date_contacted"`
	Status          string             `json:"status"`
	RejectionDate   *string            `json:"rejection_date"`
	StartDate       *string            `json:"start_date"`
	IsReplacement   bool               `json:"is_replacement"`
	ReplacementOfID *uint64            `json:"replacement_of_id"`
	ReplacementNote *string            `json:"replacement_note"`
	InitialPayment  *initialPaymentReq `json:"initial_payment"`
}

// toModel validates the request and converts it into an Application.
// Date strings are parsed here so repositories only see time values.
func (req *applicationReq) toModel() (*model.Application, string) {
	if req.Status == "" {
		req.Status = model.StatusNew
	}
	if !model.ValidStatus(req.Status) {
		return nil, "invalid status"
	}
	if req.VacancyID == 0 {
		return nil, "vacancy_id required"
	}
	dateContacted, err := parseDatePtr(req.DateContacted)
	if err != nil {
		return nil, "invalid date_contacted"
	}
	rejectionDate, err := parseDatePtr(req.RejectionDate)
	if err != nil {
		return nil, "invalid rejection_date"
	}
	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, "invalid start_date"
	}
	if err := repository.ValidateStatusDates(req.Status, rejectionDate, startDate); err != nil {
		return nil, err.Error()
	}
	if err := repository.ValidateReplacement(req.IsReplacement, req.ReplacementOfID); err != nil {
		return nil, err.Error()
	}
	return &model.Application{
		CandidateID:     req.CandidateID,
		VacancyID:       req.VacancyID,
		RecruiterID:     req.RecruiterID,
		DateContacted:   dateContacted,
		Status:          req.Status,
		RejectionDate:   rejectionDate,
		StartDate:       startDate,
		IsReplacement:   req.IsReplacement,
		ReplacementOfID: req.ReplacementOfID,
		ReplacementNote: req.ReplacementNote,
	}, ""
}

// Create records a new application.  Exactly one of candidate_id or an
// inline candidate must be supplied; the inline path creates both rows
// in a single transaction.  An optional initial payment is appended to
// the ledger after the application exists.
func (h *ApplicationHandler) Create(c echo.Context) error {
	var req applicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	scope := getScope(c)
	if req.RecruiterID == 0 && !scope.Admin {
		req.RecruiterID = scope.RecruiterID
	}
	if req.RecruiterID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "recruiter_id required"})
	}
	if !scope.CanAccessRecruiter(req.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	inline := req.Candidate != nil
	if inline == (req.CandidateID != 0) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide exactly one of candidate_id or candidate"})
	}
	if inline {
		req.Candidate.FullName = strings.TrimSpace(req.Candidate.FullName)
		if req.Candidate.FullName == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "candidate.full_name required"})
		}
	}

	app, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	vac, err := h.Vacancies.GetByID(ctx, app.VacancyID)
	if err != nil {
		return repoError(c, err, "load vacancy failed")
	}

	// Validate the initial payment before any row is written so a bad
	// ledger entry never leaves a half-created application behind.
	var initial *model.Payment
	if req.InitialPayment != nil {
		paidDate, err := parseDatePtr(&req.InitialPayment.PaidDate)
		if err != nil || paidDate == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "initial_payment.paid_date required"})
		}
		amount := req.InitialPayment.Amount
		if amount == 0 {
			amount = vac.FeeAmount
		}
		if amount <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "initial_payment.amount must be positive"})
		}
		initial = &model.Payment{PaidDate: *paidDate, Amount: amount, Note: req.InitialPayment.Note}
	}

	if app.ReplacementOfID != nil {
		ok, err := h.Applications.Exists(ctx, *app.ReplacementOfID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check replacement failed"})
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "replacement_of_id does not reference an existing application"})
		}
	}

	if inline {
		cand := &model.Candidate{
			FullName: req.Candidate.FullName,
			Phone:    req.Candidate.Phone,
			Email:    req.Candidate.Email,
			Notes:    req.Candidate.Notes,
		}
		if err := h.Applications.CreateWithCandidate(ctx, h.Candidates, cand, app); err != nil {
			return repoError(c, err, "create application failed")
		}
	} else {
		if err := h.Applications.Create(ctx, app); err != nil {
			return repoError(c, err, "create application failed")
		}
	}

	if initial != nil {
		initial.ApplicationID = app.ID
		if err := h.Payments.Add(ctx, initial); err != nil {
			return repoError(c, err, "record initial payment failed")
		}
		userID, _ := getUserID(c)
		h.publishPayment(app, initial, userID)
	}

	return c.JSON(http.StatusCreated, app)
}

// Get returns one application, subject to scope.
func (h *ApplicationHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	app, err := h.Applications.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	if !getScope(c).CanAccessRecruiter(app.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, app)
}

// Update replaces the mutable fields of an application after
// re-validating status/date and replacement invariants.  The legacy
// payment scalars are never written; paid state lives in the ledger.
func (h *ApplicationHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req applicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	existing, err := h.Applications.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	scope := getScope(c)
	if !scope.CanAccessRecruiter(existing.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if req.RecruiterID == 0 {
		req.RecruiterID = existing.RecruiterID
	}
	if !scope.CanAccessRecruiter(req.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if req.CandidateID == 0 {
		req.CandidateID = existing.CandidateID
	}
	if req.VacancyID == 0 {
		req.VacancyID = existing.VacancyID
	}

	app, msg := req.toModel()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	app.ID = id

	if app.ReplacementOfID != nil {
		if *app.ReplacementOfID == id {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "an application cannot replace itself"})
		}
		ok, err := h.Applications.Exists(ctx, *app.ReplacementOfID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check replacement failed"})
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "replacement_of_id does not reference an existing application"})
		}
	}

	if err := h.Applications.Update(ctx, app); err != nil {
		return repoError(c, err, "update application failed")
	}
	out, err := h.Applications.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes an application and its payments in one transaction.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	app, err := h.Applications.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	if !getScope(c).CanAccessRecruiter(app.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := h.Applications.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete application failed")
	}
	return c.NoContent(http.StatusNoContent)
}
