package handler // handler defines http handlers

import (
	"errors"   // errors provides sentinel matching for repository failures
	"net/http" // HTTP status codes
	"strconv"  // strconv converts strings to numeric types
	"time"     // calendar date parsing

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/talentflow/recruiting-crm/internal/repository" // repository holds the data access layer
)

// dateOnly is the wire format for calendar DATE values.
const dateOnly = "2006-01-02"

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// getUserID extracts the user_id from echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getScope builds the row-visibility policy from the claims the JWT
// middleware stored in the context.  It is derived once per request and
// passed into every scoped repository call.
func getScope(c echo.Context) repository.Scope {
	role, _ := c.Get("role").(string)
	var rid uint64
	switch t := c.Get("recruiter_id").(type) {
	case uint64:
		rid = t
	case float64:
		rid = uint64(t)
	}
	return repository.Scope{Admin: role == "admin", RecruiterID: rid}
}

// pathID parses a numeric path parameter, returning 0 when absent or
// malformed.  Callers treat 0 as "not found" since ids start at 1.
func pathID(c echo.Context, name string) uint64 {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// queryUint parses an optional numeric query parameter; empty or
// malformed values yield 0 (no filter).
func queryUint(c echo.Context, name string) uint64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseDatePtr parses an optional "2006-01-02" string into a *time.Time.
// Nil input and empty strings yield nil; a malformed value is an error.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateOnly, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// repoError translates repository sentinels into the HTTP error
// responses shared by every handler: validation failures map to 400,
// missing rows to 404, referential-integrity conflicts to 409 and scope
// violations to 403.  Anything else is a 500 with the given fallback
// message.
func repoError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrClientNotFound),
		errors.Is(err, repository.ErrRecruiterNotFound),
		errors.Is(err, repository.ErrCandidateNotFound),
		errors.Is(err, repository.ErrVacancyNotFound),
		errors.Is(err, repository.ErrApplicationNotFound),
		errors.Is(err, repository.ErrPaymentNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNameExists),
		errors.Is(err, repository.ErrUsernameExists),
		errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
