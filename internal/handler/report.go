package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/report"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// ReportHandler serves the monthly earnings report with its tax
// overlay.
type ReportHandler struct {
	Repo *repository.EarningsRepo
}

func NewReportHandler(earnings *repository.EarningsRepo) *ReportHandler {
	if earnings == nil {
		panic("nil repository passed to NewReportHandler")
	}
	return &ReportHandler{Repo: earnings}
}

type earningsResp struct {
	*repository.EarningsReport
	Taxes report.TaxEstimate `json:"taxes"`
}

// Earnings returns all payments in one calendar month plus the derived
// tax estimate.  Non-admin callers are always restricted to their own
// recruiter; admins may pass ?recruiter_id= to narrow the report.
func (h *ReportHandler) Earnings(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "year required"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rep, err := h.Repo.Report(ctx, year, month, queryUint(c, "recruiter_id"), getScope(c))
	if err != nil {
		return repoError(c, err, "earnings report failed")
	}
	return c.JSON(http.StatusOK, earningsResp{
		EarningsReport: rep,
		Taxes:          report.Estimate(rep.Total),
	})
}
