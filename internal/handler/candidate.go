package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// CandidateHandler serves the candidate directory.  Non-admin callers
// only see candidates attached to their own applications.
type CandidateHandler struct {
	Candidates *repository.CandidateRepo
}

func NewCandidateHandler(candidates *repository.CandidateRepo) *CandidateHandler {
	if candidates == nil {
		panic("nil repository passed to NewCandidateHandler")
	}
	return &CandidateHandler{Candidates: candidates}
}

type candidateReq struct {
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Notes    *string `json:"notes"`
}

// List returns candidates visible under the caller's scope, optionally
// narrowed by a free-text ?q= over name, phone and email.
func (h *CandidateHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Candidates.List(ctx, strings.TrimSpace(c.QueryParam("q")), getScope(c))
	if err != nil {
		return repoError(c, err, "list candidates failed")
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a candidate.  Any authenticated role may create one; the
// candidate only becomes visible to other recruiters through an
// application.
func (h *CandidateHandler) Create(c echo.Context) error {
	var req candidateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cand := &model.Candidate{FullName: req.FullName, Phone: req.Phone, Email: req.Email, Notes: req.Notes}
	if err := h.Candidates.Create(ctx, cand); err != nil {
		return repoError(c, err, "create candidate failed")
	}
	return c.JSON(http.StatusCreated, cand)
}

// Get returns a single candidate by id, subject to the same visibility
// rule as List: non-admins only reach candidates linked to their own
// applications.
func (h *CandidateHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	ok, err := h.Candidates.AccessibleBy(ctx, id, getScope(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load candidate failed"})
	}
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	cand, err := h.Candidates.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load candidate failed")
	}
	return c.JSON(http.StatusOK, cand)
}
