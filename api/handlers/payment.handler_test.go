package api

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPaymentHandler() *PaymentHandler {
	discard := log.New(io.Discard, "", 0)
	return NewPaymentHandler(nil, discard, discard)
}

func TestAddPaymentRejectsNegativeAmount(t *testing.T) {
	h := testPaymentHandler()

	body := `{"customerId": 5, "date": "2025-01-15", "amount": -50.00}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AddPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount must not be negative")
}

func TestAddPaymentRejectsBadDate(t *testing.T) {
	h := testPaymentHandler()

	body := `{"customerId": 5, "date": "15/01/2025", "amount": 50.00}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AddPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddPaymentRequiresCustomer(t *testing.T) {
	h := testPaymentHandler()

	body := `{"date": "2025-01-15", "amount": 50.00}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.AddPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
