package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/payment"
	"github.com/tharindu-dev/cartify/internal/service"
)

// WebhookHandler receives payment gateway callbacks. Only the session
// completed event changes order state; everything else is acknowledged
// and dropped so the gateway stops retrying.
type WebhookHandler struct {
	payments      service.PaymentProcessor
	webhookSecret string
	log           *zap.SugaredLogger
}

func NewWebhookHandler(payments service.PaymentProcessor, webhookSecret string, log *zap.SugaredLogger) *WebhookHandler {
	return &WebhookHandler{payments: payments, webhookSecret: webhookSecret, log: log}
}

func (h *WebhookHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/v1/order/webhook", h.HandleStripeEvent)
}

func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := payment.ParseWebhookEvent(body, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.log.Warnw("webhook rejected", "error", err)
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if string(event.Type) != payment.SessionCompletedType {
		h.log.Debugw("ignoring webhook event", "type", event.Type)
		api.OK(c, "received", nil)
		return
	}

	session, err := payment.SessionFromEvent(event)
	if err != nil {
		h.log.Errorw("failed to decode session from event", "error", err)
		api.OK(c, "received", nil)
		return
	}

	if err := h.payments.ConfirmSessionCompleted(c.Request.Context(), session.ClientReferenceID); err != nil {
		// Acknowledge anyway: a retry will not fix a bad reference, and
		// transient failures are reconciled from the gateway dashboard.
		h.log.Errorw("failed to confirm payment",
			"client_reference_id", session.ClientReferenceID, "error", err)
	}
	api.OK(c, "received", nil)
}
