package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/api"
	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/v1/products")
	{
		group.POST("", h.Create)
		group.GET("", h.ListApproved)
		group.GET("/all", h.ListAll)
		group.GET("/status/:status", h.ListByStatus)
		group.GET("/category/:name", h.ListByCategory)
		group.GET("/search", h.Search)
		group.GET("/:id", h.GetByID)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.PUT("/review", h.Review)
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.Created(c, "Product created successfully and is pending review", product)
}

// ListApproved is the storefront catalog: only APPROVED products.
func (h *ProductHandler) ListApproved(c *gin.Context) {
	products, err := h.products.ListApproved(c.Request.Context())
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Products fetched successfully", products)
}

func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Products fetched successfully", products)
}

func (h *ProductHandler) ListByStatus(c *gin.Context) {
	products, err := h.products.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Products fetched successfully", products)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, err := h.products.ListApprovedByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Products fetched successfully", products)
}

func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.products.Search(c.Request.Context(), c.Query("value"))
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Products fetched successfully", products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Product fetched successfully", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		api.Error(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Product deleted successfully", nil)
}

func (h *ProductHandler) Review(c *gin.Context) {
	var req models.ReviewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.Review(c.Request.Context(), req)
	if err != nil {
		api.FromError(c, err)
		return
	}
	api.OK(c, "Product reviewed successfully", product)
}
