package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/export"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// ExportHandler streams the pipeline as semicolon-delimited CSV for the
// agency's spreadsheet templates.  The same filters and scoping as the
// JSON listing apply.
type ExportHandler struct {
	Pipeline *repository.PipelineRepo
}

func NewExportHandler(pipeline *repository.PipelineRepo) *ExportHandler {
	if pipeline == nil {
		panic("nil repository passed to NewExportHandler")
	}
	return &ExportHandler{Pipeline: pipeline}
}

var pipelineCSVHeader = []string{
	"id", "candidate", "vacancy", "client", "recruiter", "status",
	"date_contacted", "rejection_date", "start_date",
	"paid", "total_paid", "last_paid_date",
	"is_replacement", "replacement_of_id",
}

// PipelineCSV renders the filtered pipeline rows as CSV.
func (h *ExportHandler) PipelineCSV(c echo.Context) error {
	q, msg := pipelineQueryFrom(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Pipeline.List(ctx, q, getScope(c))
	if err != nil {
		return repoError(c, err, "pipeline query failed")
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.FormatUint(r.ID, 10),
			r.CandidateName,
			r.VacancyTitle,
			r.ClientName,
			r.RecruiterName,
			r.Status,
			strOrEmpty(r.DateContacted),
			strOrEmpty(r.RejectionDate),
			strOrEmpty(r.StartDate),
			strconv.FormatBool(r.Paid),
			fmt.Sprintf("%.2f", r.PaymentAmount),
			strOrEmpty(r.PaidDate),
			strconv.FormatBool(r.IsReplacement),
			uintOrEmpty(r.ReplacementOfID),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pipeline.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.Write(c.Response(), pipelineCSVHeader, records)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uintOrEmpty(n *uint64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatUint(*n, 10)
}
