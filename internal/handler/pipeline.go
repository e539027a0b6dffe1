package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// PipelineHandler serves the denormalized application listing that
// backs the main screen.  Filters combine with AND; role scoping is
// applied inside the repository and cannot be widened by parameters.
type PipelineHandler struct {
	Pipeline *repository.PipelineRepo
}

func NewPipelineHandler(pipeline *repository.PipelineRepo) *PipelineHandler {
	if pipeline == nil {
		panic("nil repository passed to NewPipelineHandler")
	}
	return &PipelineHandler{Pipeline: pipeline}
}

// pipelineQueryFrom reads the filter parameters shared by the JSON
// listing and the CSV export.
func pipelineQueryFrom(c echo.Context) (repository.PipelineQuery, string) {
	q := repository.PipelineQuery{
		ClientID:    queryUint(c, "client_id"),
		RecruiterID: queryUint(c, "recruiter_id"),
		Status:      strings.TrimSpace(c.QueryParam("status")),
		Search:      strings.TrimSpace(c.QueryParam("search")),
	}
	if q.Status != "" && !model.ValidStatus(q.Status) {
		return q, "invalid status"
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, "invalid limit"
		}
		q.Limit = n
	}
	return q, ""
}

// List returns pipeline rows, newest first.
func (h *PipelineHandler) List(c echo.Context) error {
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
	return c.JSON(http.StatusOK, rows)
}
