package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/queue"
	"github.com/talentflow/recruiting-crm/internal/repository"
	queue_publisher "github.com/talentflow/recruiting-crm/internal/service"
)

// PaymentHandler manages the per-application payment ledger.  Every
// append publishes a payment.recorded event; delivery is best-effort
// and never blocks or fails the request.
type PaymentHandler struct {
	Payments     *repository.PaymentRepo
	Applications *repository.ApplicationRepo
	Candidates   *repository.CandidateRepo
	Vacancies    *repository.VacancyRepo
	Clients      *repository.ClientRepo
	Recruiters   *repository.RecruiterRepo
}

func NewPaymentHandler(pays *repository.PaymentRepo, apps *repository.ApplicationRepo, cands *repository.CandidateRepo, vacs *repository.VacancyRepo, clients *repository.ClientRepo, recs *repository.RecruiterRepo) *PaymentHandler {
	if pays == nil || apps == nil || cands == nil || vacs == nil || clients == nil || recs == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{
		Payments:     pays,
		Applications: apps,
		Candidates:   cands,
		Vacancies:    vacs,
		Clients:      clients,
		Recruiters:   recs,
	}
}

type paymentReq struct {
	PaidDate string  `json:"paid_date"`
	Amount   float64 `json:"amount"`
	Note     *string `json:"note"`
}

// List returns the ledger for one application in paid_date, id order,
// plus the derived summary.
func (h *PaymentHandler) List(c echo.Context) error {
	appID := pathID(c, "id")
	if appID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	app, err := h.Applications.GetByID(ctx, appID)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	if !getScope(c).CanAccessRecruiter(app.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	items, err := h.Payments.ListByApplication(ctx, appID)
	if err != nil {
		return repoError(c, err, "list payments failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "summary": repository.Summarize(items)})
}

// Add validates and appends a payment to an application's ledger.
// Validation failures are rejected before any row is written.
func (h *PaymentHandler) Add(c echo.Context) error {
	appID := pathID(c, "id")
	if appID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	paidDate, err := parseDatePtr(&req.PaidDate)
	if err != nil || paidDate == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "paid_date required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	app, err := h.Applications.GetByID(ctx, appID)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	if !getScope(c).CanAccessRecruiter(app.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	p := &model.Payment{ApplicationID: appID, PaidDate: *paidDate, Amount: req.Amount, Note: req.Note}
	if err := h.Payments.Add(ctx, p); err != nil {
		return repoError(c, err, "record payment failed")
	}

	userID, _ := getUserID(c)
	go publishPaymentRecorded(h.Candidates, h.Vacancies, h.Clients, h.Recruiters, app, p, userID)

	return c.JSON(http.StatusCreated, p)
}

// Delete removes one ledger entry and recomputes the application's
// derived payment state.
func (h *PaymentHandler) Delete(c echo.Context) error {
	id := pathID(c, "payment_id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Payments.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load payment failed")
	}
	app, err := h.Applications.GetByID(ctx, p.ApplicationID)
	if err != nil {
		return repoError(c, err, "load application failed")
	}
	if !getScope(c).CanAccessRecruiter(app.RecruiterID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := h.Payments.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete payment failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// publishPaymentRecorded enriches a ledger append with the surrounding
// names and publishes it.  Lookup or broker failures are logged and
// swallowed; the payment is already committed.
func publishPaymentRecorded(cands *repository.CandidateRepo, vacs *repository.VacancyRepo, clients *repository.ClientRepo, recs *repository.RecruiterRepo, app *model.Application, p *model.Payment, recordedBy uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ev := queue.PaymentRecordedEvent{
		PaymentID:     p.ID,
		ApplicationID: app.ID,
		Amount:        p.Amount,
		PaidDate:      p.PaidDate.Format(dateOnly),
		RecordedBy:    recordedBy,
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if cand, err := cands.GetByID(ctx, app.CandidateID); err == nil {
		ev.CandidateName = cand.FullName
	}
	if vac, err := vacs.GetByID(ctx, app.VacancyID); err == nil {
		ev.VacancyTitle = vac.Title
		if cl, err := clients.GetByID(ctx, vac.ClientID); err == nil {
			ev.ClientName = cl.Name
		}
	}
	if rec, err := recs.GetByID(ctx, app.RecruiterID); err == nil {
		ev.RecruiterName = rec.Name
	}

	if err := queue_publisher.PublishPaymentRecorded(ctx, ev); err != nil {
		log.Printf("payment event publish failed: %v", err)
	}
}

// publishPayment is the ApplicationHandler's hook for the initial
// payment recorded during application creation.
func (h *ApplicationHandler) publishPayment(app *model.Application, p *model.Payment, recordedBy uint64) {
	go publishPaymentRecorded(h.Candidates, h.Vacancies, h.Clients, h.Recruiters, app, p, recordedBy)
}
