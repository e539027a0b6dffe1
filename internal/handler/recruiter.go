package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// RecruiterHandler serves the recruiter directory.  A non-admin caller
// listing recruiters sees only their own entry.
type RecruiterHandler struct {
	Recruiters *repository.RecruiterRepo
}

func NewRecruiterHandler(recruiters *repository.RecruiterRepo) *RecruiterHandler {
	if recruiters == nil {
		panic("nil repository passed to NewRecruiterHandler")
	}
	return &RecruiterHandler{Recruiters: recruiters}
}

type recruiterReq struct {
	Name string `json:"name"`
}

// List returns recruiters visible under the caller's scope.
func (h *RecruiterHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Recruiters.List(ctx, getScope(c))
	if err != nil {
		return repoError(c, err, "list recruiters failed")
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a recruiter (admin only via the router).
func (h *RecruiterHandler) Create(c echo.Context) error {
	var req recruiterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rec := &model.Recruiter{Name: req.Name}
	if err := h.Recruiters.Create(ctx, rec); err != nil {
		return repoError(c, err, "create recruiter failed")
	}
	return c.JSON(http.StatusCreated, rec)
}

// Update renames a recruiter.
func (h *RecruiterHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req recruiterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Recruiters.UpdateName(ctx, id, req.Name); err != nil {
		return repoError(c, err, "update recruiter failed")
	}
	rec, err := h.Recruiters.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load recruiter failed")
	}
	return c.JSON(http.StatusOK, rec)
}

// Delete removes a recruiter with no applications or user accounts.
func (h *RecruiterHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Recruiters.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete recruiter failed")
	}
	return c.NoContent(http.StatusNoContent)
}
