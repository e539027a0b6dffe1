package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newPaymentCtx builds an echo context for POST /v1/applications/:id/payments.
// The handler under test must reject these bodies before touching any
// repository, so a zero-value handler is sufficient.
func newPaymentCtx(t *testing.T, appID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/applications/:id/payments")
	c.SetParamNames("id")
	c.SetParamValues(appID)
	c.Set("user_id", uint64(1))
	c.Set("role", "admin")
	return c, rec
}

func TestPaymentAddRejectsNonPositiveAmount(t *testing.T) {
	h := &PaymentHandler{}

	for _, body := range []string{
		`{"amount":0,"paid_date":"2024-05-01"}`,
		`{"amount":-10,"paid_date":"2024-05-01"}`,
	} {
		c, rec := newPaymentCtx(t, "1", body)
		assert.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "amount")
	}
}

func TestPaymentAddRejectsMissingPaidDate(t *testing.T) {
	h := &PaymentHandler{}

	for _, body := range []string{
		`{"amount":500}`,
		`{"amount":500,"paid_date":""}`,
		`{"amount":500,"paid_date":"05/01/2024"}`,
	} {
		c, rec := newPaymentCtx(t, "1", body)
		assert.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "paid_date")
	}
}

func TestPaymentAddRejectsBadApplicationID(t *testing.T) {
	h := &PaymentHandler{}
	c, rec := newPaymentCtx(t, "abc", `{"amount":500,"paid_date":"2024-05-01"}`)
	assert.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
