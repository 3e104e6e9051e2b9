package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
}

func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/v1/order/checkout", h.Checkout)
}

// Checkout returns 200 only when a payment session was opened; every
// business-rule failure comes back as 400 with the failure reason in the
// response body.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}

	if resp.Status == string(models.OrderStatusPendingPayment) {
		api.OK(c, "Checkout completed", resp)
		return
	}
	c.JSON(http.StatusBadRequest, api.Envelope{
		Status:  http.StatusBadRequest,
		Message: resp.Message,
		Data:    resp,
	})
}
