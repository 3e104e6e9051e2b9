package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/service"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/v1/order/:id", h.GetByID)

	// Landing endpoints the payment gateway redirects the shopper to.
	router.GET("/api/v1/payment/success", func(c *gin.Context) {
		api.OK(c, "Payment completed, your order is being processed", nil)
	})
	router.GET("/api/v1/payment/cancel", func(c *gin.Context) {
		api.OK(c, "Payment cancelled", nil)
	})
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Order fetched successfully", order)
}
