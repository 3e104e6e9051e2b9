package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type CartHandler struct {
	carts service.CartService
}

func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/v1/cart")
	{
		group.POST("", h.CreateCart)
		group.GET("/:id", h.GetCart)
		group.GET("/customer/:customerId", h.GetCartByCustomer)
		group.POST("/:id/items", h.AddItem)
		group.DELETE("/:id/items/:sku", h.RemoveItem)
		group.DELETE("/:id", h.RemoveCart)
	}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	var req models.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.carts.CreateCart(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.Created(c, "Cart created successfully", cart)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid cart ID")
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), id)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Cart fetched successfully", cart)
}

func (h *CartHandler) GetCartByCustomer(c *gin.Context) {
	cart, err := h.carts.GetCartByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Cart fetched successfully", cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid cart ID")
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), id, req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Item added to cart successfully", cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid cart ID")
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), id, c.Param("sku")); err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Item removed from cart successfully", nil)
}

func (h *CartHandler) RemoveCart(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid cart ID")
		return
	}

	if err := h.carts.RemoveCart(c.Request.Context(), id); err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Cart removed successfully", nil)
}
