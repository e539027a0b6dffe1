package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/talentflow/recruiting-crm/internal/repository"
)

func newCandidateGetCtx(t *testing.T, role string, recruiterID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/candidates/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set("user_id", uint64(1))
	c.Set("role", role)
	c.Set("recruiter_id", recruiterID)
	return c, rec
}

func TestCandidateGetRejectsUnboundUser(t *testing.T) {
	// A user account without a recruiter binding can see no candidate;
	// the scope check runs before any row is read.
	h := &CandidateHandler{Candidates: repository.NewCandidateRepo(nil)}

	c, rec := newCandidateGetCtx(t, "user", 0)
	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCandidateGetRejectsBadID(t *testing.T) {
	h := &CandidateHandler{Candidates: repository.NewCandidateRepo(nil)}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/candidates/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
