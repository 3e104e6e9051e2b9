package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type InventoryHandler struct {
	inventory service.InventoryService
}

func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/v1/inventory")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:sku", h.GetBySKU)
		group.GET("/:sku/exists", h.Exists)
		group.PUT("/:sku", h.UpdateQuantity)
	}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req models.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.inventory.CreateForProduct(c.Request.Context(), req.SKU, req.Quantity)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.Created(c, "Inventory created successfully", inv)
}

func (h *InventoryHandler) List(c *gin.Context) {
	inventories, err := h.inventory.List(c.Request.Context())
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Inventory fetched successfully", inventories)
}

func (h *InventoryHandler) GetBySKU(c *gin.Context) {
	inv, err := h.inventory.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Inventory fetched successfully", inv)
}

func (h *InventoryHandler) Exists(c *gin.Context) {
	exists, err := h.inventory.Exists(c.Request.Context(), c.Param("sku"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Inventory existence checked", gin.H{"sku": c.Param("sku"), "exists": exists})
}

func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.inventory.UpdateQuantity(c.Request.Context(), c.Param("sku"), *req.Quantity)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Inventory updated successfully", inv)
}
