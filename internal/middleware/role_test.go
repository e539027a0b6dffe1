package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runWithRole(t *testing.T, role interface{}, allowed ...string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	assert.NoError(t, h(c))
	return rec.Code
}

func TestRequireRoleAllows(t *testing.T) {
	assert.Equal(t, http.StatusOK, runWithRole(t, "admin", "admin"))
	assert.Equal(t, http.StatusOK, runWithRole(t, "user", "admin", "user"))
}

func TestRequireRoleRejects(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, runWithRole(t, "user", "admin"))
	assert.Equal(t, http.StatusForbidden, runWithRole(t, nil, "admin"))
	assert.Equal(t, http.StatusForbidden, runWithRole(t, 42, "admin"))
}
