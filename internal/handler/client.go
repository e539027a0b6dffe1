package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// ClientHandler serves the client directory.  Listing is open to any
// authenticated role; mutations are admin-only (enforced by the router).
type ClientHandler struct {
	Clients *repository.ClientRepo
}

func NewClientHandler(clients *repository.ClientRepo) *ClientHandler {
	if clients == nil {
		panic("nil repository passed to NewClientHandler")
	}
	return &ClientHandler{Clients: clients}
}

type clientReq struct {
	Name string `json:"name"`
}

// List returns all clients ordered by name.
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Clients.List(ctx)
	if err != nil {
		return repoError(c, err, "list clients failed")
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a new client.  Names are unique; duplicates yield 409.
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cl := &model.Client{Name: req.Name}
	if err := h.Clients.Create(ctx, cl); err != nil {
		return repoError(c, err, "create client failed")
	}
	return c.JSON(http.StatusCreated, cl)
}

// Update renames a client.
func (h *ClientHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Clients.UpdateName(ctx, id, req.Name); err != nil {
		return repoError(c, err, "update client failed")
	}
	cl, err := h.Clients.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load client failed")
	}
	return c.JSON(http.StatusOK, cl)
}

// Delete removes a client with no vacancies; otherwise 409.
func (h *ClientHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Clients.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete client failed")
	}
	return c.NoContent(http.StatusNoContent)
}
