package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type mockPaymentProcessor struct{ mock.Mock }

func (m *mockPaymentProcessor) ProcessPayment(ctx context.Context, order *models.Order, total float64) *models.CheckoutResponse {
	args := m.Called(ctx, order, total)
	resp, _ := args.Get(0).(*models.CheckoutResponse)
	return resp
}

func (m *mockPaymentProcessor) ConfirmSessionCompleted(ctx context.Context, clientRef string) error {
	return m.Called(ctx, clientRef).Error(0)
}

func newWebhookRouter(payments *mockPaymentProcessor, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewWebhookHandler(payments, secret, zap.NewNop().Sugar()).RegisterRoutes(router)
	return router
}

func postWebhook(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookSessionCompletedConfirmsOrder(t *testing.T) {
	payments := &mockPaymentProcessor{}
	payments.On("ConfirmSessionCompleted", mock.Anything, "42").Return(nil)

	router := newWebhookRouter(payments, "")
	w := postWebhook(router, `{
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "client_reference_id": "42"}}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	payments.AssertExpectations(t)
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	payments := &mockPaymentProcessor{}

	router := newWebhookRouter(payments, "")
	w := postWebhook(router, `{
		"type": "payment_intent.created",
		"data": {"object": {"id": "pi_1"}}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	payments.AssertNotCalled(t, "ConfirmSessionCompleted", mock.Anything, mock.Anything)
}

func TestWebhookRejectsMalformedPayload(t *testing.T) {
	router := newWebhookRouter(&mockPaymentProcessor{}, "")
	w := postWebhook(router, "not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	router := newWebhookRouter(&mockPaymentProcessor{}, "whsec_test")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order/webhook",
		bytes.NewBufferString(`{"type": "checkout.session.completed"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookAcknowledgesConfirmationFailure(t *testing.T) {
	payments := &mockPaymentProcessor{}
	payments.On("ConfirmSessionCompleted", mock.Anything, "42").Return(assert.AnError)

	router := newWebhookRouter(payments, "")
	w := postWebhook(router, `{
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "client_reference_id": "42"}}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	payments.AssertExpectations(t)
}
