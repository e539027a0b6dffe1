package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentflow/recruiting-crm/internal/config"
	"github.com/talentflow/recruiting-crm/internal/model"
	"github.com/talentflow/recruiting-crm/internal/repository"
)

// UserHandler manages login accounts.  All routes are admin-only via
// the router.  A "user" account must be bound to a recruiter; an
// "admin" account must not be.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Cfg: cfg, Users: users}
}

type userReq struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	RecruiterID *uint64 `json:"recruiter_id"`
}

// List returns all accounts (password hashes are never serialized).
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Users.List(ctx)
	if err != nil {
		return repoError(c, err, "list users failed")
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds an account.  Role/recruiter binding rules are enforced in
// the repository.
func (h *UserHandler) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Username, req.Password, req.Role, req.RecruiterID, h.Cfg.BcryptCost)
	if err != nil {
		return repoError(c, err, "create user failed")
	}
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load user failed")
	}
	return c.JSON(http.StatusCreated, u)
}

// Update changes an account's role, recruiter binding and optionally
// its password.
func (h *UserHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load user failed")
	}
	if msg := applyUserUpdate(&u, req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	if err := h.Users.Update(ctx, &u, req.Password, h.Cfg.BcryptCost); err != nil {
		return repoError(c, err, "update user failed")
	}
	out, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "load user failed")
	}
	return c.JSON(http.StatusOK, out)
}

// applyUserUpdate merges the supplied fields into an existing account.
// Omitted fields keep their current value, so a password-only update
// does not disturb the recruiter binding.  Promoting an account to
// admin clears the binding, since admins must not carry one.
func applyUserUpdate(u *model.User, req userReq) string {
	if req.Username != "" {
		u.Username = strings.ToLower(strings.TrimSpace(req.Username))
	}
	if req.Role != "" {
		u.Role = strings.ToLower(strings.TrimSpace(req.Role))
	}
	if req.RecruiterID != nil {
		u.RecruiterID = req.RecruiterID
	}
	if u.Role == model.RoleAdmin {
		u.RecruiterID = nil
	}
	if u.Role == model.RoleUser && u.RecruiterID == nil {
		return "recruiter_id required for role user"
	}
	return ""
}

// Delete removes an account.  An admin cannot delete their own account
// while logged in with it.
func (h *UserHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if self, err := getUserID(c); err == nil && self == id {
		return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete the account in use"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete user failed")
	}
	return c.NoContent(http.StatusNoContent)
}
