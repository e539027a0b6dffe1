package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// VacancyHandler serves vacancy CRUD.  Listing accepts an optional
// client_id filter; mutations are admin-only (enforced by the router).
type VacancyHandler struct {
	Vacancies *repository.VacancyRepo
}

func NewVacancyHandler(vacancies *repository.VacancyRepo) *VacancyHandler {
	if vacancies == nil {
		panic("nil repository passed to NewVacancyHandler")
	}
	return &VacancyHandler{Vacancies: vacancies}
}

type vacancyReq struct {
	ClientID  uint64  `json:"client_id"`
	Title     string  `json:"title"`
	FeeAmount float64 `json:"fee_amount"`
	City      *string `json:"city"`
}

func (r *vacancyReq) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.ClientID == 0 {
		return "client_id required"
	}
	if r.Title == "" {
		return "title required"
	}
	if r.FeeAmount < 0 {
		return "fee_amount must be non-negative"
	}
	return ""
}

// List returns vacancies, optionally filtered by ?client_id=.
func (h *VacancyHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Vacancies.List(ctx, queryUint(c, "client_id"))
	if err != nil {
		return repoError(c, err, "list vacancies failed")
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a vacancy under an existing client.
func (h *VacancyHandler) Create(c echo.Context) error {
	var req vacancyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v := &model.Vacancy{ClientID: req.ClientID, Title: req.Title, FeeAmount: req.FeeAmount, City: req.City}
	if err := h.Vacancies.Create(ctx, v); err != nil {
		return repoError(c, err, "create vacancy failed")
	}
	return c.JSON(http.StatusCreated, v)
}

// Update replaces the mutable fields of a vacancy.
func (h *VacancyHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req vacancyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v := &model.Vacancy{ID: id, ClientID: req.ClientID, Title: req.Title, FeeAmount: req.FeeAmount, City: req.City}
	if err := h.Vacancies.Update(ctx, v); err != nil {
		return repoError(c, err, "update vacancy failed")
	}
	out, err := h.Vacancies.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load vacancy failed")
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes a vacancy with no applications; otherwise 409.
func (h *VacancyHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Vacancies.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete vacancy failed")
	}
	return c.NoContent(http.StatusNoContent)
}
