package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow/recruiting-crm/internal/utils"
)

const testSecret = "test-secret"

func doAuth(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	return c, rec
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 12, "user", 4, 15)
	require.NoError(t, err)

	c, rec := doAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(12), c.Get("user_id"))
	assert.Equal(t, "user", c.Get("role"))
	assert.Equal(t, uint64(4), c.Get("recruiter_id"))
}

func TestJWTAuthAdminHasNoRecruiter(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 1, "admin", 0, 15)
	require.NoError(t, err)

	c, rec := doAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", c.Get("role"))
	assert.Equal(t, uint64(0), c.Get("recruiter_id"))
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	_, rec := doAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, "admin", 0, 15)
	require.NoError(t, err)

	_, rec := doAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
